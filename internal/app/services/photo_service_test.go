package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/photostorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddPhoto_FirstPhotoBecomesMain(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	storage := new(mockPhotoStorage)
	svc := NewPhotoService(photoRepo, storage, zerolog.Nop())

	fileHeader := &multipart.FileHeader{Filename: "selfie.jpg"}
	storage.On("Upload", mock.Anything, fileHeader).
		Return(&photostorage.UploadResult{URL: "http://x/a.jpg", PublicID: "a.jpg"}, nil)
	photoRepo.On("HasMainPhoto", mock.Anything, int64(11)).Return(false, nil)
	photoRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Photo) bool {
		return p.MemberID == 11 && p.IsMain && !p.IsApproved
	})).Return(int64(1), nil)

	resp, err := svc.AddPhoto(context.Background(), 11, fileHeader)

	require.NoError(t, err)
	assert.True(t, resp.IsMain)
	assert.False(t, resp.IsApproved)
}

func TestAddPhoto_LaterPhotosNotMain(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	storage := new(mockPhotoStorage)
	svc := NewPhotoService(photoRepo, storage, zerolog.Nop())

	fileHeader := &multipart.FileHeader{Filename: "b.jpg"}
	storage.On("Upload", mock.Anything, fileHeader).
		Return(&photostorage.UploadResult{URL: "http://x/b.jpg", PublicID: "b.jpg"}, nil)
	photoRepo.On("HasMainPhoto", mock.Anything, int64(11)).Return(true, nil)
	photoRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Photo) bool {
		return !p.IsMain
	})).Return(int64(2), nil)

	resp, err := svc.AddPhoto(context.Background(), 11, fileHeader)

	require.NoError(t, err)
	assert.False(t, resp.IsMain)
}

func TestSetMainPhoto_NotOwned(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	svc := NewPhotoService(photoRepo, new(mockPhotoStorage), zerolog.Nop())

	photoRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Photo{ID: 7, MemberID: 99}, nil)

	err := svc.SetMainPhoto(context.Background(), 11, 7)

	assert.ErrorIs(t, err, apperrors.ErrPhotoNotOwned)
	photoRepo.AssertNotCalled(t, "SetMain", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetMainPhoto_AlreadyMain(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	svc := NewPhotoService(photoRepo, new(mockPhotoStorage), zerolog.Nop())

	photoRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Photo{ID: 7, MemberID: 11, IsMain: true}, nil)

	err := svc.SetMainPhoto(context.Background(), 11, 7)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyMainPhoto)
}

func TestSetMainPhoto_Success(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	svc := NewPhotoService(photoRepo, new(mockPhotoStorage), zerolog.Nop())

	photoRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Photo{ID: 7, MemberID: 11}, nil)
	photoRepo.On("SetMain", mock.Anything, int64(11), int64(7)).Return(nil)

	err := svc.SetMainPhoto(context.Background(), 11, 7)

	require.NoError(t, err)
	photoRepo.AssertExpectations(t)
}

func TestDeletePhoto_MainForbidden(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	storage := new(mockPhotoStorage)
	svc := NewPhotoService(photoRepo, storage, zerolog.Nop())

	photoRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Photo{ID: 7, MemberID: 11, IsMain: true}, nil)

	err := svc.DeletePhoto(context.Background(), 11, 7)

	assert.ErrorIs(t, err, apperrors.ErrMainPhotoImmutable)
	photoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePhoto_RemovesStorageThenRow(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	storage := new(mockPhotoStorage)
	svc := NewPhotoService(photoRepo, storage, zerolog.Nop())

	publicID := "a.jpg"
	photoRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Photo{ID: 7, MemberID: 11, PublicID: &publicID}, nil)
	storage.On("Delete", mock.Anything, "a.jpg").Return(nil)
	photoRepo.On("Delete", mock.Anything, int64(7)).Return(nil)

	err := svc.DeletePhoto(context.Background(), 11, 7)

	require.NoError(t, err)
	storage.AssertExpectations(t)
	photoRepo.AssertExpectations(t)
}

func TestRejectPhoto_MainForbidden(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	svc := NewPhotoService(photoRepo, new(mockPhotoStorage), zerolog.Nop())

	photoRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&models.Photo{ID: 7, MemberID: 11, IsMain: true}, nil)

	err := svc.RejectPhoto(context.Background(), 7)

	assert.ErrorIs(t, err, apperrors.ErrMainPhotoImmutable)
	photoRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRejectPhoto_RemovesPendingPhoto(t *testing.T) {
	photoRepo := new(mockPhotoRepo)
	storage := new(mockPhotoStorage)
	svc := NewPhotoService(photoRepo, storage, zerolog.Nop())

	publicID := "b.jpg"
	photoRepo.On("GetByID", mock.Anything, int64(8)).
		Return(&models.Photo{ID: 8, MemberID: 11, PublicID: &publicID}, nil)
	storage.On("Delete", mock.Anything, "b.jpg").Return(nil)
	photoRepo.On("Delete", mock.Anything, int64(8)).Return(nil)

	err := svc.RejectPhoto(context.Background(), 8)

	require.NoError(t, err)
	photoRepo.AssertExpectations(t)
}
