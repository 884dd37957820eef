package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/app/models/dto"
	"github.com/serkank/amora/internal/pkg/apperrors"
	"github.com/serkank/amora/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})
}

func TestRegister_UsernameTaken(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	tokenRepo := new(mockTokenRepo)
	svc := NewAuthService(memberRepo, tokenRepo, testJWTService(), zerolog.Nop())

	memberRepo.On("UsernameExists", mock.Anything, "lisa").Return(true, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:    "Lisa",
		Password:    "Pa55w.rd1",
		Gender:      "female",
		DateOfBirth: time.Date(1996, 6, 2, 0, 0, 0, 0, time.UTC),
		KnownAs:     "Lisa",
	})

	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyUsed)
	memberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_UnknownGender(t *testing.T) {
	svc := NewAuthService(new(mockMemberRepo), new(mockTokenRepo), testJWTService(), zerolog.Nop())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:    "sam",
		Password:    "Pa55w.rd1",
		Gender:      "other",
		DateOfBirth: time.Date(1996, 6, 2, 0, 0, 0, 0, time.UTC),
		KnownAs:     "Sam",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnknownGender)
}

func TestRegister_Success(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	tokenRepo := new(mockTokenRepo)
	svc := NewAuthService(memberRepo, tokenRepo, testJWTService(), zerolog.Nop())

	memberRepo.On("UsernameExists", mock.Anything, "lisa").Return(false, nil)
	memberRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Member) bool {
		// Username is lowercased, the password is never stored in the clear
		return m.Username == "lisa" && m.Role == models.RoleMember && m.Password != "Pa55w.rd1"
	})).Return(int64(1), nil)
	tokenRepo.On("Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username:    "Lisa",
		Password:    "Pa55w.rd1",
		Gender:      "female",
		DateOfBirth: time.Date(1996, 6, 2, 0, 0, 0, 0, time.UTC),
		KnownAs:     "Lisa",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.Equal(t, "lisa", resp.Member.Username)
	tokenRepo.AssertExpectations(t)
}

func TestLogin_UnknownUsername(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	svc := NewAuthService(memberRepo, new(mockTokenRepo), testJWTService(), zerolog.Nop())

	memberRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrMemberNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever1"})

	// The response does not reveal whether the username exists
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	svc := NewAuthService(memberRepo, new(mockTokenRepo), testJWTService(), zerolog.Nop())

	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	memberRepo.On("GetByUsername", mock.Anything, "lisa").
		Return(&models.Member{ID: 1, Username: "lisa", Password: hashed}, nil)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Username: "lisa", Password: "wrong-horse"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefresh_Expired(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	tokenRepo := new(mockTokenRepo)
	svc := NewAuthService(memberRepo, tokenRepo, testJWTService(), zerolog.Nop())

	tokenRepo.On("GetByToken", mock.Anything, "stale").Return(&models.RefreshToken{
		MemberID:  1,
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}, nil)
	tokenRepo.On("Delete", mock.Anything, "stale").Return(nil)

	_, err := svc.Refresh(context.Background(), "stale")

	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefresh_RotatesToken(t *testing.T) {
	memberRepo := new(mockMemberRepo)
	tokenRepo := new(mockTokenRepo)
	svc := NewAuthService(memberRepo, tokenRepo, testJWTService(), zerolog.Nop())

	tokenRepo.On("GetByToken", mock.Anything, "valid").Return(&models.RefreshToken{
		MemberID:  1,
		Token:     "valid",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	memberRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Member{ID: 1, Username: "lisa", Role: models.RoleMember}, nil)
	tokenRepo.On("Delete", mock.Anything, "valid").Return(nil)
	tokenRepo.On("Save", mock.Anything, int64(1), mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Refresh(context.Background(), "valid")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "valid", resp.RefreshToken)
	tokenRepo.AssertExpectations(t)
}
