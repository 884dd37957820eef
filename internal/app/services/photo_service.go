package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/photostorage"
)

// PhotoService defines the interface for photo operations, including the
// admin moderation queue
type PhotoService interface {
	AddPhoto(ctx context.Context, memberID int64, fileHeader *multipart.FileHeader) (*dto.PhotoResponse, error)
	GetPhoto(ctx context.Context, photoID int64) (*dto.PhotoResponse, error)
	SetMainPhoto(ctx context.Context, memberID, photoID int64) error
	DeletePhoto(ctx context.Context, memberID, photoID int64) error
	GetPhotosForModeration(ctx context.Context) ([]dto.PhotoForModerationResponse, error)
	ApprovePhoto(ctx context.Context, photoID int64) error
	RejectPhoto(ctx context.Context, photoID int64) error
}

// photoServiceImpl implements PhotoService
type photoServiceImpl struct {
	photoRepo repositories.IPhotoRepository
	storage   photostorage.PhotoStorage
	logger    zerolog.Logger
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(
	photoRepo repositories.IPhotoRepository,
	storage photostorage.PhotoStorage,
	logger zerolog.Logger,
) PhotoService {
	return &photoServiceImpl{
		photoRepo: photoRepo,
		storage:   storage,
		logger:    logger,
	}
}

// AddPhoto stores the uploaded image and records it. A member's first photo
// becomes their main photo; every upload starts out unapproved.
func (s *photoServiceImpl) AddPhoto(ctx context.Context, memberID int64, fileHeader *multipart.FileHeader) (*dto.PhotoResponse, error) {
	result, err := s.storage.Upload(ctx, fileHeader)
	if err != nil {
		s.logger.Error().Err(err).Int64("memberID", memberID).Msg("Photo upload to storage failed")
		return nil, err
	}

	hasMain, err := s.photoRepo.HasMainPhoto(ctx, memberID)
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		MemberID:   memberID,
		URL:        result.URL,
		IsMain:     !hasMain,
		IsApproved: false,
		PublicID:   &result.PublicID,
	}

	if _, err := s.photoRepo.Create(ctx, photo); err != nil {
		// The image is already in storage; take it back out so it cannot leak
		if delErr := s.storage.Delete(ctx, result.PublicID); delErr != nil {
			s.logger.Warn().Err(delErr).Str("publicID", result.PublicID).Msg("Failed to clean up orphaned photo")
		}
		return nil, err
	}

	s.logger.Info().Int64("memberID", memberID).Int64("photoID", photo.ID).Bool("isMain", photo.IsMain).Msg("Photo added")

	resp := dto.FromPhoto(photo)
	return &resp, nil
}

// GetPhoto returns a single photo by ID
func (s *photoServiceImpl) GetPhoto(ctx context.Context, photoID int64) (*dto.PhotoResponse, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromPhoto(photo)
	return &resp, nil
}

// SetMainPhoto promotes one of the member's own photos to main
func (s *photoServiceImpl) SetMainPhoto(ctx context.Context, memberID, photoID int64) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if photo.MemberID != memberID {
		return apperrors.ErrPhotoNotOwned
	}
	if photo.IsMain {
		return apperrors.ErrAlreadyMainPhoto
	}

	return s.photoRepo.SetMain(ctx, memberID, photoID)
}

// DeletePhoto removes one of the member's own photos. The main photo cannot
// be deleted; promote another photo first.
func (s *photoServiceImpl) DeletePhoto(ctx context.Context, memberID, photoID int64) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if photo.MemberID != memberID {
		return apperrors.ErrPhotoNotOwned
	}
	if photo.IsMain {
		return apperrors.ErrMainPhotoImmutable
	}

	return s.removePhoto(ctx, photo)
}

// GetPhotosForModeration lists every photo awaiting approval
func (s *photoServiceImpl) GetPhotosForModeration(ctx context.Context) ([]dto.PhotoForModerationResponse, error) {
	photos, err := s.photoRepo.GetUnapproved(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.PhotoForModerationResponse, 0, len(photos))
	for _, p := range photos {
		resp = append(resp, dto.PhotoForModerationResponse{
			PhotoResponse: dto.FromPhoto(&p.Photo),
			MemberID:      p.MemberID,
			KnownAs:       p.KnownAs,
		})
	}

	return resp, nil
}

// ApprovePhoto marks a pending photo as approved
func (s *photoServiceImpl) ApprovePhoto(ctx context.Context, photoID int64) error {
	if _, err := s.photoRepo.GetByID(ctx, photoID); err != nil {
		return err
	}

	if err := s.photoRepo.Approve(ctx, photoID); err != nil {
		return err
	}

	s.logger.Info().Int64("photoID", photoID).Msg("Photo approved")
	return nil
}

// RejectPhoto removes a pending photo. A main photo cannot be rejected.
func (s *photoServiceImpl) RejectPhoto(ctx context.Context, photoID int64) error {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}

	if photo.IsMain {
		return apperrors.ErrMainPhotoImmutable
	}

	s.logger.Info().Int64("photoID", photoID).Int64("memberID", photo.MemberID).Msg("Photo rejected")
	return s.removePhoto(ctx, photo)
}

// removePhoto deletes the stored image first, then the database row. A failed
// row delete leaves a row pointing at a dead URL, which can be retried.
func (s *photoServiceImpl) removePhoto(ctx context.Context, photo *models.Photo) error {
	if photo.PublicID != nil {
		if err := s.storage.Delete(ctx, *photo.PublicID); err != nil {
			s.logger.Error().Err(err).Int64("photoID", photo.ID).Msg("Failed to delete photo from storage")
			return err
		}
	}

	return s.photoRepo.Delete(ctx, photo.ID)
}
