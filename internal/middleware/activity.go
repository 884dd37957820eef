package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/pkg/logger"
)

// LastActive stamps the authenticated member's last-active timestamp after
// each handled request. Must run after JWTAuth. The update is fire-and-forget
// and never fails the request.
func LastActive(memberRepo repositories.IMemberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		memberID, ok := MemberID(c)
		if !ok {
			return
		}

		// Detach from the request context; the response has already gone out
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := memberRepo.UpdateLastActive(ctx, memberID); err != nil {
			logger.Debug().Err(err).Int64("memberID", memberID).Msg("Last-active stamp failed")
		}
	}
}
