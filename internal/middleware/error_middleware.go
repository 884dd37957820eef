package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// this with any error coming out of a service; new error sentinels get a
// mapping here or fall through to 500.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	switch {
	// Not found
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrMemberNotFound),
		errors.Is(err, apperrors.ErrPhotoNotFound),
		errors.Is(err, apperrors.ErrMessageNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message)

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")

	// Authorization
	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrPhotoNotOwned),
		errors.Is(err, apperrors.ErrNotMessageParticipant),
		errors.Is(err, apperrors.ErrNotMessageRecipient):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, message)

	// Conflicts
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrUsernameAlreadyUsed),
		errors.Is(err, apperrors.ErrAlreadyLiked),
		errors.Is(err, apperrors.ErrAlreadyMainPhoto),
		errors.Is(err, apperrors.ErrMainPhotoImmutable):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message)

	// Bad requests
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrUnknownGender):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message)

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
