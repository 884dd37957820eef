package services

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/app/repositories"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	memberRepo repositories.IMemberRepository
	tokenRepo  repositories.ITokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	memberRepo repositories.IMemberRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		memberRepo: memberRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new member and logs them in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	gender := models.Gender(strings.ToLower(req.Gender))
	if gender != models.GenderMale && gender != models.GenderFemale {
		return nil, apperrors.ErrUnknownGender
	}

	exists, err := s.memberRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyUsed
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	member := &models.Member{
		Username:    username,
		Password:    hashed,
		Gender:      gender,
		DateOfBirth: req.DateOfBirth,
		KnownAs:     req.KnownAs,
		City:        req.City,
		Country:     req.Country,
		Role:        models.RoleMember,
	}

	if _, err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("memberID", member.ID).Str("username", username).Msg("Member registered")

	return s.issueTokens(ctx, member)
}

// Login authenticates a member by username and password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	member, err := s.memberRepo.GetByUsername(ctx, username)
	if err != nil {
		// Hide whether the username exists
		s.logger.Debug().Str("username", username).Msg("Login attempt for unknown username")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(member.Password, req.Password) {
		s.logger.Debug().Str("username", username).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, member)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
// The used refresh token is rotated out.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.IsExpired() {
		_ = s.tokenRepo.Delete(ctx, refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	member, err := s.memberRepo.GetByID(ctx, stored.MemberID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, member)
	if err != nil {
		return nil, err
	}
	return &resp.Tokens, nil
}

// Logout revokes a refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Delete(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, member *models.Member) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(member)
	if err != nil {
		s.logger.Error().Err(err).Int64("memberID", member.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	expiresAt := time.Now().Add(time.Duration(refreshExpiresIn) * time.Second)
	if err := s.tokenRepo.Save(ctx, member.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Tokens: dto.TokenResponse{
			AccessToken:      accessToken,
			RefreshToken:     refreshToken,
			ExpiresIn:        expiresIn,
			RefreshExpiresIn: refreshExpiresIn,
		},
		Member: dto.FromMember(member),
	}, nil
}
