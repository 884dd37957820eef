package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/helpers"
)

// MemberService defines the interface for member discovery and profile operations
type MemberService interface {
	GetMembers(ctx context.Context, filter models.MemberFilter) (*dto.MemberListResponse, error)
	GetMember(ctx context.Context, requesterID, memberID int64) (*dto.MemberDetailResponse, error)
	UpdateProfile(ctx context.Context, memberID int64, req *dto.UpdateMemberRequest) (*dto.MemberDetailResponse, error)
	Like(ctx context.Context, likerID, likeeID int64) error
}

// memberServiceImpl implements MemberService
type memberServiceImpl struct {
	memberRepo repositories.IMemberRepository
	likeRepo   repositories.ILikeRepository
	logger     zerolog.Logger
}

// NewMemberService creates a new MemberService
func NewMemberService(
	memberRepo repositories.IMemberRepository,
	likeRepo repositories.ILikeRepository,
	logger zerolog.Logger,
) MemberService {
	return &memberServiceImpl{
		memberRepo: memberRepo,
		likeRepo:   likeRepo,
		logger:     logger,
	}
}

// GetMembers evaluates the discovery filter and returns one page of members.
// Unset filter fields are defaulted here: gender falls back to the opposite of
// the requester's, age bounds to the open 18..99 window.
func (s *memberServiceImpl) GetMembers(ctx context.Context, filter models.MemberFilter) (*dto.MemberListResponse, error) {
	if filter.Gender == "" {
		requester, err := s.memberRepo.GetByID(ctx, filter.RequesterID)
		if err != nil {
			return nil, err
		}
		filter.Gender = requester.Gender.Opposite()
	}

	if filter.MinAge == 0 {
		filter.MinAge = models.DefaultMinAge
	}
	if filter.MaxAge == 0 {
		filter.MaxAge = models.DefaultMaxAge
	}
	if filter.Page == 0 {
		filter.Page = helpers.DefaultPage
	}
	if filter.PageSize == 0 {
		filter.PageSize = helpers.DefaultPageSize
	}

	members, total, err := s.memberRepo.GetMembers(ctx, filter, time.Now())
	if err != nil {
		return nil, err
	}

	items := make([]dto.MemberListItemResponse, 0, len(members))
	for _, m := range members {
		items = append(items, dto.FromMember(m))
	}

	return &dto.MemberListResponse{
		Members:    items,
		Pagination: helpers.NewPagination(total, filter.Page, filter.PageSize),
	}, nil
}

// GetMember returns a member's full profile. Members see their own unapproved
// photos; everyone else only sees approved ones.
func (s *memberServiceImpl) GetMember(ctx context.Context, requesterID, memberID int64) (*dto.MemberDetailResponse, error) {
	member, err := s.memberRepo.GetByIDWithPhotos(ctx, memberID, requesterID == memberID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromMemberDetail(member)
	return &resp, nil
}

// UpdateProfile applies the editable profile fields and returns the updated profile
func (s *memberServiceImpl) UpdateProfile(ctx context.Context, memberID int64, req *dto.UpdateMemberRequest) (*dto.MemberDetailResponse, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	if req.Introduction != nil {
		member.Introduction = req.Introduction
	}
	if req.LookingFor != nil {
		member.LookingFor = req.LookingFor
	}
	if req.Interests != nil {
		member.Interests = req.Interests
	}
	if req.City != nil {
		member.City = req.City
	}
	if req.Country != nil {
		member.Country = req.Country
	}

	if err := s.memberRepo.UpdateProfile(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("memberID", memberID).Msg("Member profile updated")

	return s.GetMember(ctx, memberID, memberID)
}

// Like records that likerID liked likeeID. Liking yourself is rejected,
// liking the same member twice surfaces ErrAlreadyLiked, and the target
// must exist.
func (s *memberServiceImpl) Like(ctx context.Context, likerID, likeeID int64) error {
	if likerID == likeeID {
		return apperrors.NewBadRequestError("you cannot like yourself")
	}

	if _, err := s.memberRepo.GetByID(ctx, likeeID); err != nil {
		return err
	}

	if _, err := s.likeRepo.GetLike(ctx, likerID, likeeID); err == nil {
		return apperrors.ErrAlreadyLiked
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	if err := s.likeRepo.Create(ctx, &models.Like{LikerID: likerID, LikeeID: likeeID}); err != nil {
		return err
	}

	s.logger.Debug().Int64("likerID", likerID).Int64("likeeID", likeeID).Msg("Like recorded")
	return nil
}
