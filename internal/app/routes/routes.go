package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/app/controllers"
	"github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	photoController *controllers.PhotoController,
	messageController *controllers.MessageController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	memberRepo repositories.IMemberRepository,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	authenticated.Use(middleware.LastActive(memberRepo))
	{
		members := authenticated.Group("/members")
		{
			members.GET("", memberController.GetMembers)
			members.PUT("", memberController.UpdateProfile)

			// Photo routes come before /:id so "photos" is not parsed as a member ID
			photos := members.Group("/photos")
			{
				photos.POST("", photoController.AddPhoto)
				photos.GET("/:id", photoController.GetPhoto)
				photos.PUT("/:id/set-main", photoController.SetMainPhoto)
				photos.DELETE("/:id", photoController.DeletePhoto)
			}

			members.GET("/:id", memberController.GetMember)
			members.POST("/:id/like", memberController.Like)
		}

		messages := authenticated.Group("/messages")
		{
			messages.POST("", messageController.CreateMessage)
			messages.GET("", messageController.GetMessages)
			messages.GET("/thread/:memberId", messageController.GetThread)
			messages.GET("/:id", messageController.GetMessage)
			messages.PUT("/:id/read", messageController.MarkRead)
			messages.DELETE("/:id", messageController.DeleteMessage)
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.GET("/photos-to-moderate", adminController.GetPhotosForModeration)
			admin.PUT("/photos/:id/approve", adminController.ApprovePhoto)
			admin.DELETE("/photos/:id/reject", adminController.RejectPhoto)
		}
	}
}
