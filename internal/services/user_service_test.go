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

func newUserServiceForTest(userRepo *mockUserRepo, propertyRepo *mockPropertyRepo) (UserService, *recordingEmailProvider) {
	mailer := &recordingEmailProvider{}
	return NewUserService(userRepo, propertyRepo, mailer, newFakeCache()), mailer
}

func appErrFrom(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return appErr
}

func TestRegisterDefaultsToGuest(t *testing.T) {
	userRepo := new(mockUserRepo)
	propertyRepo := new(mockPropertyRepo)
	svc, mailer := newUserServiceForTest(userRepo, propertyRepo)

	userRepo.On("FindByEmail", mock.Anything, "aliya@example.com").Return(nil, repositories.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Aliya",
		Email:    "Aliya@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleGuest, user.Role)
	assert.Equal(t, "aliya@example.com", user.Email)
	require.NotNil(t, user.GuestDetails)
	assert.True(t, user.GuestDetails.IsGuest)
	assert.NotNil(t, user.GuestDetails.Wishlist)
	assert.Nil(t, user.HostDetails)
	assert.True(t, auth.CheckPasswordHash("secret1", user.PasswordHash))
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.Len(t, mailer.sent, 1)
	userRepo.AssertExpectations(t)
}

func TestRegisterHostSynthesizesDetails(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Bauyrzhan",
		Email:    "host@example.com",
		Password: "secret1",
		Role:     models.UserRoleHost,
	})
	require.NoError(t, err)

	require.NotNil(t, user.HostDetails)
	assert.True(t, user.HostDetails.IsHost)
	assert.NotNil(t, user.HostDetails.HostSince)
	assert.Nil(t, user.GuestDetails)
}

func TestRegisterCallerOverridesWin(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	isHost := false
	since := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Override",
		Email:    "override@example.com",
		Password: "secret1",
		Role:     models.UserRoleHost,
		HostDetails: &dto.HostDetailsOverride{
			IsHost:    &isHost,
			HostSince: &since,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, user.HostDetails)
	assert.False(t, user.HostDetails.IsHost, "caller override must beat the synthesized default")
	assert.Equal(t, since, *user.HostDetails.HostSince)
}

func TestRegisterDuplicateEmailPreCheck(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&models.User{}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "secret1",
	})
	appErr := appErrFrom(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "User already exists", appErr.Message)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateEmailRace(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	// Pre-check passes but the unique index rejects the insert.
	userRepo.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, repositories.ErrUserNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repositories.ErrUserAlreadyExists)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Racer",
		Email:    "race@example.com",
		Password: "secret1",
	})
	appErr := appErrFrom(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "User already exists", appErr.Message)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _ := newUserServiceForTest(new(mockUserRepo), new(mockPropertyRepo))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Weak",
		Email:    "weak@example.com",
		Password: "abc",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _ := newUserServiceForTest(new(mockUserRepo), new(mockPropertyRepo))

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Bad",
		Email:    "bad@example.com",
		Password: "secret1",
		Role:     models.UserRole("landlord"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestGetUserByIDMalformed(t *testing.T) {
	svc, _ := newUserServiceForTest(new(mockUserRepo), new(mockPropertyRepo))

	_, err := svc.GetUserByID(context.Background(), "not-a-uuid")
	appErr := appErrFrom(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Invalid ID format", appErr.Message)
}

func TestGetUserByIDTrimsWhitespace(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	id := uuid.NewString()
	userRepo.On("FindByID", mock.Anything, id).Return(&models.User{BaseModel: models.BaseModel{ID: id}}, nil)

	user, err := svc.GetUserByID(context.Background(), "  "+id+"  ")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestGetUserByIDNotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	id := uuid.NewString()
	userRepo.On("FindByID", mock.Anything, id).Return(nil, repositories.ErrUserNotFound)

	_, err := svc.GetUserByID(context.Background(), id)
	appErr := appErrFrom(t, err)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestUpdateUserKeepsHashForUnchangedPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	id := uuid.NewString()
	existing := &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Email:        "keep@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleGuest,
	}
	userRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	same := "secret1"
	updated, err := svc.UpdateUser(context.Background(), id, &dto.UpdateUserRequest{Password: &same})
	require.NoError(t, err)
	assert.Equal(t, hash, updated.PasswordHash, "unchanged password must keep the stored hash")
}

func TestUpdateUserRehashesChangedPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	id := uuid.NewString()
	existing := &models.User{
		BaseModel:    models.BaseModel{ID: id},
		Email:        "change@example.com",
		PasswordHash: hash,
		Role:         models.UserRoleGuest,
	}
	userRepo.On("FindByID", mock.Anything, id).Return(existing, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	newPassword := "another-secret"
	updated, err := svc.UpdateUser(context.Background(), id, &dto.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.NotEqual(t, hash, updated.PasswordHash)
	assert.True(t, auth.CheckPasswordHash(newPassword, updated.PasswordHash))
}

func TestUpdateUserDuplicateEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	id := uuid.NewString()
	userRepo.On("FindByID", mock.Anything, id).Return(&models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     "mine@example.com",
	}, nil)
	userRepo.On("FindByEmail", mock.Anything, "other@example.com").Return(&models.User{}, nil)

	other := "other@example.com"
	_, err := svc.UpdateUser(context.Background(), id, &dto.UpdateUserRequest{Email: &other})
	appErr := appErrFrom(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateUserRoleChangeSynthesizesDetails(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	id := uuid.NewString()
	userRepo.On("FindByID", mock.Anything, id).Return(&models.User{
		BaseModel: models.BaseModel{ID: id},
		Email:     "promote@example.com",
		Role:      models.UserRoleGuest,
	}, nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	role := models.UserRoleHost
	updated, err := svc.UpdateUser(context.Background(), id, &dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	require.NotNil(t, updated.HostDetails)
	assert.True(t, updated.HostDetails.IsHost)
	assert.Equal(t, id, updated.HostDetails.UserID)
}

func TestDeleteUserReturnsSnapshot(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	id := uuid.NewString()
	snapshot := &models.User{BaseModel: models.BaseModel{ID: id}, Name: "Doomed"}
	userRepo.On("FindByID", mock.Anything, id).Return(snapshot, nil)
	userRepo.On("Delete", mock.Anything, id).Return(nil)

	user, err := svc.DeleteUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", user.Name)
	userRepo.AssertExpectations(t)
}

func TestBecomeHostRejectsNonGuests(t *testing.T) {
	userRepo := new(mockUserRepo)
	svc, _ := newUserServiceForTest(userRepo, new(mockPropertyRepo))

	id := uuid.NewString()
	userRepo.On("FindByID", mock.Anything, id).Return(&models.User{
		BaseModel: models.BaseModel{ID: id},
		Role:      models.UserRoleHost,
	}, nil)

	_, err := svc.BecomeHost(context.Background(), id)
	appErr := appErrFrom(t, err)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAddToWishlistIsIdempotent(t *testing.T) {
	userRepo := new(mockUserRepo)
	propertyRepo := new(mockPropertyRepo)
	svc, _ := newUserServiceForTest(userRepo, propertyRepo)

	userID := uuid.NewString()
	propertyID := uuid.NewString()

	propertyRepo.On("FindByID", mock.Anything, propertyID).Return(&models.Property{
		BaseModel: models.BaseModel{ID: propertyID},
	}, nil)
	userRepo.On("FindByID", mock.Anything, userID).Return(&models.User{
		BaseModel: models.BaseModel{ID: userID},
		Role:      models.UserRoleGuest,
		GuestDetails: &models.GuestDetails{
			UserID:   userID,
			IsGuest:  true,
			Wishlist: []string{propertyID},
		},
	}, nil)

	wishlist, err := svc.AddToWishlist(context.Background(), userID, propertyID)
	require.NoError(t, err)
	assert.Len(t, wishlist, 1)
	userRepo.AssertNotCalled(t, "SaveGuestDetails", mock.Anything, mock.Anything)
}

func TestAddToWishlistUnknownProperty(t *testing.T) {
	userRepo := new(mockUserRepo)
	propertyRepo := new(mockPropertyRepo)
	svc, _ := newUserServiceForTest(userRepo, propertyRepo)

	propertyID := uuid.NewString()
	propertyRepo.On("FindByID", mock.Anything, propertyID).Return(nil, repositories.ErrPropertyNotFound)

	_, err := svc.AddToWishlist(context.Background(), uuid.NewString(), propertyID)
	appErr := appErrFrom(t, err)
	assert.Equal(t, 404, appErr.HTTPCode)
}
