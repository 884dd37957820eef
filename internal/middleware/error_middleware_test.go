package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"member not found", apperrors.ErrMemberNotFound, http.StatusNotFound},
		{"photo not found", apperrors.ErrPhotoNotFound, http.StatusNotFound},
		{"message not found", apperrors.ErrMessageNotFound, http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"photo not owned", apperrors.ErrPhotoNotOwned, http.StatusForbidden},
		{"not message participant", apperrors.ErrNotMessageParticipant, http.StatusForbidden},
		{"not message recipient", apperrors.ErrNotMessageRecipient, http.StatusForbidden},
		{"username taken", apperrors.ErrUsernameAlreadyUsed, http.StatusConflict},
		{"already liked", apperrors.ErrAlreadyLiked, http.StatusConflict},
		{"already main photo", apperrors.ErrAlreadyMainPhoto, http.StatusConflict},
		{"main photo immutable", apperrors.ErrMainPhotoImmutable, http.StatusConflict},
		{"unknown gender", apperrors.ErrUnknownGender, http.StatusBadRequest},
		{"bad request", apperrors.NewBadRequestError("nope"), http.StatusBadRequest},
		{"unmapped error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest("GET", "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
