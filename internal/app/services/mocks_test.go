package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/photostorage"
	"github.com/stretchr/testify/mock"
)

// --- Mock IMemberRepository ---

type mockMemberRepo struct {
	mock.Mock
}

func (m *mockMemberRepo) Create(ctx context.Context, member *models.Member) (int64, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMemberRepo) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *mockMemberRepo) GetByIDWithPhotos(ctx context.Context, id int64, includeUnapproved bool) (*models.Member, error) {
	args := m.Called(ctx, id, includeUnapproved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *mockMemberRepo) GetByUsername(ctx context.Context, username string) (*models.Member, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *mockMemberRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockMemberRepo) GetMembers(ctx context.Context, filter models.MemberFilter, today time.Time) ([]*models.Member, int64, error) {
	args := m.Called(ctx, filter, today)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Member), args.Get(1).(int64), args.Error(2)
}

func (m *mockMemberRepo) UpdateProfile(ctx context.Context, member *models.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *mockMemberRepo) UpdateLastActive(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock ILikeRepository ---

type mockLikeRepo struct {
	mock.Mock
}

func (m *mockLikeRepo) GetLike(ctx context.Context, likerID, likeeID int64) (*models.Like, error) {
	args := m.Called(ctx, likerID, likeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *mockLikeRepo) Create(ctx context.Context, like *models.Like) error {
	return m.Called(ctx, like).Error(0)
}

// --- Mock IPhotoRepository ---

type mockPhotoRepo struct {
	mock.Mock
}

func (m *mockPhotoRepo) Create(ctx context.Context, photo *models.Photo) (int64, error) {
	args := m.Called(ctx, photo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPhotoRepo) GetByID(ctx context.Context, id int64) (*models.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *mockPhotoRepo) HasMainPhoto(ctx context.Context, memberID int64) (bool, error) {
	args := m.Called(ctx, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhotoRepo) SetMain(ctx context.Context, memberID, photoID int64) error {
	return m.Called(ctx, memberID, photoID).Error(0)
}

func (m *mockPhotoRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPhotoRepo) Approve(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPhotoRepo) GetUnapproved(ctx context.Context) ([]*models.PhotoForModeration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PhotoForModeration), args.Error(1)
}

// --- Mock PhotoStorage ---

type mockPhotoStorage struct {
	mock.Mock
}

func (m *mockPhotoStorage) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*photostorage.UploadResult, error) {
	args := m.Called(ctx, fileHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*photostorage.UploadResult), args.Error(1)
}

func (m *mockPhotoStorage) Delete(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

// --- Mock IMessageRepository ---

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, message *models.Message) (int64, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *mockMessageRepo) GetForMember(ctx context.Context, filter models.MessageFilter) ([]*models.Message, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*models.Message), args.Get(1).(int64), args.Error(2)
}

func (m *mockMessageRepo) GetThread(ctx context.Context, currentID, otherID int64) ([]*models.Message, error) {
	args := m.Called(ctx, currentID, otherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

func (m *mockMessageRepo) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMessageRepo) MarkDeleted(ctx context.Context, id int64, bySender bool) error {
	return m.Called(ctx, id, bySender).Error(0)
}

// --- Mock ITokenRepository ---

type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Save(ctx context.Context, memberID int64, token string, expiresAt time.Time) error {
	return m.Called(ctx, memberID, token, expiresAt).Error(0)
}

func (m *mockTokenRepo) GetByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *mockTokenRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
