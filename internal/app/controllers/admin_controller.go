package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/app/services"
	"github.com/serkank/amora/internal/middleware"
	"github.com/serkank/amora/internal/pkg/apperrors"
)

// AdminController handles the photo moderation queue
type AdminController struct {
	photoService services.PhotoService
}

// NewAdminController creates a new AdminController
func NewAdminController(photoService services.PhotoService) *AdminController {
	return &AdminController{photoService: photoService}
}

// GetPhotosForModeration handles listing photos awaiting approval
// @Summary List photos for moderation
// @Description Returns every photo awaiting approval, oldest first. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PhotoForModerationResponse} "Pending photos retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/photos-to-moderate [get]
func (c *AdminController) GetPhotosForModeration(ctx *gin.Context) {
	resp, err := c.photoService.GetPhotosForModeration(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ApprovePhoto handles approving a pending photo
// @Summary Approve a photo
// @Description Marks a pending photo as approved. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse "Photo approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/photos/{id}/approve [put]
func (c *AdminController) ApprovePhoto(ctx *gin.Context) {
	photoID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || photoID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid photo ID"))
		return
	}

	if err := c.photoService.ApprovePhoto(ctx, photoID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Photo approved"))
}

// RejectPhoto handles rejecting a pending photo
// @Summary Reject a photo
// @Description Removes a pending photo. A member's main photo cannot be rejected. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse "Photo rejected"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 409 {object} dto.ErrorResponse "Main photo cannot be rejected"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/photos/{id}/reject [delete]
func (c *AdminController) RejectPhoto(ctx *gin.Context) {
	photoID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || photoID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid photo ID"))
		return
	}

	if err := c.photoService.RejectPhoto(ctx, photoID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Photo rejected"))
}
