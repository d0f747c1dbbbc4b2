package services

import (
	"context"
	"testing"
	"time"

	"staynest/internal/auth"
	"staynest/internal/models"
	"staynest/internal/repositories"
	"staynest/internal/services/dto"
	"staynest/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(userRepo *mockUserRepo, tokenRepo *mockRefreshTokenRepo) AuthService {
	return NewAuthService(userRepo, tokenRepo, auth.NewTokenManager("unit-test-secret", 60))
}

func TestLoginIssuesTokens(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokenRepo := new(mockRefreshTokenRepo)
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, "login@example.com").Return(&models.User{
		BaseModel:    models.BaseModel{ID: uuid.NewString()},
		Email:        "login@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleGuest,
	}, nil)
	tokenRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Login@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "login@example.com", resp.User.Email)
	tokenRepo.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthServiceForTest(userRepo, new(mockRefreshTokenRepo))

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(&models.User{
		PasswordHash: hash,
	}, nil)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthServiceForTest(userRepo, new(mockRefreshTokenRepo))

	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret1",
	})
	// Unknown address and bad password are indistinguishable to the caller.
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotates(t *testing.T) {
	userRepo := new(mockUserRepo)
	tokenRepo := new(mockRefreshTokenRepo)
	svc := newAuthServiceForTest(userRepo, tokenRepo)

	userID := uuid.NewString()
	oldToken := uuid.NewString()

	tokenRepo.On("Find", mock.Anything, oldToken).Return(&models.RefreshToken{
		UserID:    userID,
		Token:     oldToken,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	userRepo.On("FindByID", mock.Anything, userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Role:      models.UserRoleGuest,
	}, nil)
	tokenRepo.On("Delete", mock.Anything, oldToken).Return(nil)
	tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Refresh(context.Background(), oldToken)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, resp.RefreshToken)
	tokenRepo.AssertCalled(t, "Delete", mock.Anything, oldToken)
}

func TestRefreshExpiredToken(t *testing.T) {
	tokenRepo := new(mockRefreshTokenRepo)
	svc := newAuthServiceForTest(new(mockUserRepo), tokenRepo)

	stale := uuid.NewString()
	tokenRepo.On("Find", mock.Anything, stale).Return(&models.RefreshToken{
		Token:     stale,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	tokenRepo.On("Delete", mock.Anything, stale).Return(nil)

	_, err := svc.Refresh(context.Background(), stale)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	tokenRepo.AssertCalled(t, "Delete", mock.Anything, stale)
}

func TestRefreshUnknownToken(t *testing.T) {
	tokenRepo := new(mockRefreshTokenRepo)
	svc := newAuthServiceForTest(new(mockUserRepo), tokenRepo)

	tokenRepo.On("Find", mock.Anything, mock.Anything).Return(nil, repositories.ErrRefreshTokenNotFound)

	_, err := svc.Refresh(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestVerifyEmailMarksUserVerified(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthServiceForTest(userRepo, new(mockRefreshTokenRepo))

	token := uuid.NewString()
	user := &models.User{
		BaseModel:         models.BaseModel{ID: uuid.NewString()},
		VerificationToken: token,
	}
	userRepo.On("FindByVerificationToken", mock.Anything, token).Return(user, nil)
	userRepo.On("Save", mock.Anything, user).Return(nil)

	err := svc.VerifyEmail(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerificationToken)
}

func TestVerifyEmailUnknownToken(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc := newAuthServiceForTest(userRepo, new(mockRefreshTokenRepo))

	userRepo.On("FindByVerificationToken", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)

	err := svc.VerifyEmail(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
