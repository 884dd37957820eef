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

// PhotoController handles a member's own photo collection
type PhotoController struct {
	photoService services.PhotoService
}

// NewPhotoController creates a new PhotoController
func NewPhotoController(photoService services.PhotoService) *PhotoController {
	return &PhotoController{photoService: photoService}
}

// AddPhoto handles a photo upload
// @Summary Upload a photo
// @Description Uploads a photo for the caller. The first photo becomes the main photo; all uploads await admin approval.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/photos [post]
func (c *PhotoController) AddPhoto(ctx *gin.Context) {
	memberID, _ := middleware.MemberID(ctx)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("a file is required"))
		return
	}

	resp, err := c.photoService.AddPhoto(ctx, memberID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// GetPhoto handles retrieving a single photo
// @Summary Get photo by ID
// @Description Returns a single photo
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse{data=dto.PhotoResponse} "Photo retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/photos/{id} [get]
func (c *PhotoController) GetPhoto(ctx *gin.Context) {
	photoID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || photoID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid photo ID"))
		return
	}

	resp, err := c.photoService.GetPhoto(ctx, photoID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// SetMainPhoto handles promoting a photo to main
// @Summary Set main photo
// @Description Promotes one of the caller's photos to be their main photo
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse "Main photo updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Photo belongs to another member"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 409 {object} dto.ErrorResponse "Photo is already the main photo"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/photos/{id}/set-main [put]
func (c *PhotoController) SetMainPhoto(ctx *gin.Context) {
	photoID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || photoID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid photo ID"))
		return
	}

	memberID, _ := middleware.MemberID(ctx)

	if err := c.photoService.SetMainPhoto(ctx, memberID, photoID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Main photo updated"))
}

// DeletePhoto handles deleting one of the caller's photos
// @Summary Delete a photo
// @Description Deletes one of the caller's photos. The main photo cannot be deleted.
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Photo ID"
// @Success 200 {object} dto.APIResponse "Photo deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid photo ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Photo belongs to another member"
// @Failure 404 {object} dto.ErrorResponse "Photo not found"
// @Failure 409 {object} dto.ErrorResponse "Main photo cannot be deleted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/photos/{id} [delete]
func (c *PhotoController) DeletePhoto(ctx *gin.Context) {
	photoID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || photoID <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid photo ID"))
		return
	}

	memberID, _ := middleware.MemberID(ctx)

	if err := c.photoService.DeletePhoto(ctx, memberID, photoID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Photo deleted"))
}
