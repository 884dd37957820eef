package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetMembers_DefaultsGenderToOpposite(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	likeRepo := new(mockLikeRepo)
	svc := NewMemberService(memberRepo, likeRepo, zerolog.Nop())

	requester := &models.Member{
		ID:          11,
		Gender:      models.GenderMale,
		DateOfBirth: time.Date(1995, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	memberRepo.On("GetByID", mock.Anything, int64(11)).Return(requester, nil)
	memberRepo.On("GetMembers", mock.Anything, mock.MatchedBy(func(f models.MemberFilter) bool {
		return f.Gender == models.GenderFemale &&
			f.MinAge == models.DefaultMinAge &&
			f.MaxAge == models.DefaultMaxAge &&
			f.Page == 1 && f.PageSize == 10
	}), mock.Anything).Return([]*models.Member{}, int64(0), nil)

	resp, err := svc.GetMembers(context.Background(), models.MemberFilter{RequesterID: 11})

	require.NoError(t, err)
	assert.Empty(t, resp.Members)
	memberRepo.AssertExpectations(t)
}

func TestGetMembers_ExplicitGenderSkipsRequesterLookup(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	likeRepo := new(mockLikeRepo)
	svc := NewMemberService(memberRepo, likeRepo, zerolog.Nop())

	memberRepo.On("GetMembers", mock.Anything, mock.MatchedBy(func(f models.MemberFilter) bool {
		return f.Gender == models.GenderMale && f.MinAge == 25 && f.MaxAge == 30
	}), mock.Anything).Return([]*models.Member{}, int64(0), nil)

	_, err := svc.GetMembers(context.Background(), models.MemberFilter{
		RequesterID: 11,
		Gender:      models.GenderMale,
		MinAge:      25,
		MaxAge:      30,
	})

	require.NoError(t, err)
	memberRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetMembers_PaginationEchoesRequestedPage(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	likeRepo := new(mockLikeRepo)
	svc := NewMemberService(memberRepo, likeRepo, zerolog.Nop())

	memberRepo.On("GetMembers", mock.Anything, mock.Anything, mock.Anything).
		Return([]*models.Member{}, int64(23), nil)

	resp, err := svc.GetMembers(context.Background(), models.MemberFilter{
		RequesterID: 11,
		Gender:      models.GenderFemale,
		Page:        7,
		PageSize:    10,
	})

	require.NoError(t, err)
	// Page 7 of 23 items is empty but the metadata still reports the request
	assert.Equal(t, 7, resp.Pagination.CurrentPage)
	assert.Equal(t, int64(23), resp.Pagination.TotalCount)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestLike_Self(t *testing.T) {
	svc := NewMemberService(new(mockMemberRepo), new(mockLikeRepo), zerolog.Nop())

	err := svc.Like(context.Background(), 11, 11)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestLike_TargetMissing(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	likeRepo := new(mockLikeRepo)
	svc := NewMemberService(memberRepo, likeRepo, zerolog.Nop())

	memberRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrMemberNotFound)

	err := svc.Like(context.Background(), 11, 99)

	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLike_Duplicate(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	likeRepo := new(mockLikeRepo)
	svc := NewMemberService(memberRepo, likeRepo, zerolog.Nop())

	memberRepo.On("GetByID", mock.Anything, int64(12)).Return(&models.Member{ID: 12}, nil)
	likeRepo.On("GetLike", mock.Anything, int64(11), int64(12)).
		Return(&models.Like{LikerID: 11, LikeeID: 12}, nil)

	err := svc.Like(context.Background(), 11, 12)

	assert.ErrorIs(t, err, apperrors.ErrAlreadyLiked)
	likeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLike_Success(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	likeRepo := new(mockLikeRepo)
	svc := NewMemberService(memberRepo, likeRepo, zerolog.Nop())

	memberRepo.On("GetByID", mock.Anything, int64(12)).Return(&models.Member{ID: 12}, nil)
	likeRepo.On("GetLike", mock.Anything, int64(11), int64(12)).Return(nil, apperrors.ErrResourceNotFound)
	likeRepo.On("Create", mock.Anything, &models.Like{LikerID: 11, LikeeID: 12}).Return(nil)

	err := svc.Like(context.Background(), 11, 12)

	require.NoError(t, err)
	likeRepo.AssertExpectations(t)
}

func TestGetMember_OwnProfileIncludesUnapproved(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	svc := NewMemberService(memberRepo, new(mockLikeRepo), zerolog.Nop())

	member := &models.Member{ID: 11, DateOfBirth: time.Date(1995, 5, 1, 0, 0, 0, 0, time.UTC)}
	memberRepo.On("GetByIDWithPhotos", mock.Anything, int64(11), true).Return(member, nil)

	_, err := svc.GetMember(context.Background(), 11, 11)

	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}

func TestGetMember_OtherProfileApprovedOnly(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	svc := NewMemberService(memberRepo, new(mockLikeRepo), zerolog.Nop())

	member := &models.Member{ID: 12, DateOfBirth: time.Date(1995, 5, 1, 0, 0, 0, 0, time.UTC)}
	memberRepo.On("GetByIDWithPhotos", mock.Anything, int64(12), false).Return(member, nil)

	_, err := svc.GetMember(context.Background(), 11, 12)

	require.NoError(t, err)
	memberRepo.AssertExpectations(t)
}
