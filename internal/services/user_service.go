package services

import (
	"context"
	"encoding/json"
	"time"

	"staynest/internal/auth"
	"staynest/internal/cache"
	"staynest/internal/email"
	"staynest/internal/logger"
	"staynest/internal/models"
	"staynest/internal/repositories"
	"staynest/internal/services/dto"
	"staynest/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const userCacheTTL = 5 * time.Minute

// UserCache is the slice of the cache client the services need. Every
// service mutating a user record goes through it to drop the stale entry.
type UserCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

var _ UserCache = (*cache.Client)(nil)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (*models.User, error)
	BecomeHost(ctx context.Context, userID string) (*models.User, error)

	GetWishlist(ctx context.Context, userID string) ([]string, error)
	AddToWishlist(ctx context.Context, userID, propertyID string) ([]string, error)
	RemoveFromWishlist(ctx context.Context, userID, propertyID string) ([]string, error)
}

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	propertyRepo repositories.PropertyRepository
	emailSender  email.Provider
	cache        UserCache
}

func NewUserService(
	userRepo repositories.UserRepository,
	propertyRepo repositories.PropertyRepository,
	emailSender email.Provider,
	cacheClient UserCache,
) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		emailSender:  emailSender,
		cache:        cacheClient,
	}
}

func userCacheKey(id string) string {
	return "user:" + id
}

// Register creates a user with role-conditional defaults. Caller-supplied
// hostDetails/guestDetails fields take precedence over the synthesized
// ones, including isHost and hostSince.
func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if len(req.Password) < 6 {
		return nil, apperrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleGuest
	}
	switch role {
	case models.UserRoleGuest, models.UserRoleHost, models.UserRoleAdmin:
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	emailAddr := normalizeEmail(req.Email)

	// Pre-check; the unique index still backstops concurrent registrations.
	if _, err := s.userRepo.FindByEmail(ctx, emailAddr); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if err != repositories.ErrUserNotFound {
		return nil, apperrors.InternalError(err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:              req.Name,
		Email:             emailAddr,
		PasswordHash:      hashedPassword,
		Role:              role,
		Phone:             req.Phone,
		ProfilePicture:    req.ProfilePicture,
		IsVerified:        req.IsVerified,
		VerificationToken: uuid.NewString(),
	}

	if role == models.UserRoleHost || req.HostDetails != nil {
		user.HostDetails = buildHostDetails(role, req.HostDetails)
	}
	if role == models.UserRoleGuest || req.GuestDetails != nil {
		user.GuestDetails = buildGuestDetails(role, req.GuestDetails)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Verification mail is best effort; registration already succeeded.
	if !user.IsVerified {
		if err := s.emailSender.SendVerification(user.Email, user.Name, user.VerificationToken); err != nil {
			logger.CtxWarn(ctx, "failed to send verification mail", "error", err.Error(), "email", user.Email)
		}
	}

	return user, nil
}

func buildHostDetails(role models.UserRole, override *dto.HostDetailsOverride) *models.HostDetails {
	details := &models.HostDetails{}
	if role == models.UserRoleHost {
		now := time.Now()
		details.IsHost = true
		details.HostSince = &now
	}
	if override != nil {
		if override.IsHost != nil {
			details.IsHost = *override.IsHost
		}
		if override.HostSince != nil {
			details.HostSince = override.HostSince
		}
		if override.TotalListings != nil {
			details.TotalListings = *override.TotalListings
		}
		if override.AverageRating != nil {
			details.AverageRating = *override.AverageRating
		}
		if override.TotalReviews != nil {
			details.TotalReviews = *override.TotalReviews
		}
	}
	return details
}

func buildGuestDetails(role models.UserRole, override *dto.GuestDetailsOverride) *models.GuestDetails {
	details := &models.GuestDetails{
		Wishlist: datatypes.JSONSlice[string]{},
	}
	if role == models.UserRoleGuest {
		details.IsGuest = true
	}
	if override != nil {
		if override.IsGuest != nil {
			details.IsGuest = *override.IsGuest
		}
		if override.TotalBookings != nil {
			details.TotalBookings = *override.TotalBookings
		}
		if override.Wishlist != nil {
			details.Wishlist = datatypes.NewJSONSlice(*override.Wishlist)
		}
	}
	return details
}

func (s *UserServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	id, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached models.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// UpdateUser applies a partial patch and revalidates the merged record.
// The password is re-hashed only when its value actually changed.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*models.User, error) {
	id, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		newEmail := normalizeEmail(*req.Email)
		if newEmail != user.Email {
			if _, err := s.userRepo.FindByEmail(ctx, newEmail); err == nil {
				return nil, apperrors.ErrEmailAlreadyExists
			} else if err != repositories.ErrUserNotFound {
				return nil, apperrors.InternalError(err)
			}
			user.Email = newEmail
		}
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, apperrors.ErrWeakPassword
		}
		// Re-hash only when the plaintext differs from the stored
		// credential; an unchanged password keeps the hash byte-identical.
		if !auth.CheckPasswordHash(*req.Password, user.PasswordHash) {
			hashed, err := auth.HashPassword(*req.Password)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			user.PasswordHash = hashed
		}
	}
	if req.Role != nil && *req.Role != user.Role {
		switch *req.Role {
		case models.UserRoleGuest, models.UserRoleHost, models.UserRoleAdmin:
		default:
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Role = *req.Role
		if user.Role == models.UserRoleHost && user.HostDetails == nil {
			user.HostDetails = buildHostDetails(models.UserRoleHost, nil)
			user.HostDetails.UserID = user.ID
		}
		if user.Role == models.UserRoleGuest && user.GuestDetails == nil {
			user.GuestDetails = buildGuestDetails(models.UserRoleGuest, nil)
			user.GuestDetails.UserID = user.ID
		}
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.HostDetails != nil {
		if user.HostDetails == nil {
			user.HostDetails = &models.HostDetails{UserID: user.ID}
		}
		applyHostOverride(user.HostDetails, req.HostDetails)
	}
	if req.GuestDetails != nil {
		if user.GuestDetails == nil {
			user.GuestDetails = &models.GuestDetails{UserID: user.ID, Wishlist: datatypes.JSONSlice[string]{}}
		}
		applyGuestOverride(user.GuestDetails, req.GuestDetails)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if err == repositories.ErrUserAlreadyExists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(id))
	return user, nil
}

func applyHostOverride(details *models.HostDetails, override *dto.HostDetailsOverride) {
	if override.IsHost != nil {
		details.IsHost = *override.IsHost
	}
	if override.HostSince != nil {
		details.HostSince = override.HostSince
	}
	if override.TotalListings != nil {
		details.TotalListings = *override.TotalListings
	}
	if override.AverageRating != nil {
		details.AverageRating = *override.AverageRating
	}
	if override.TotalReviews != nil {
		details.TotalReviews = *override.TotalReviews
	}
}

func applyGuestOverride(details *models.GuestDetails, override *dto.GuestDetailsOverride) {
	if override.IsGuest != nil {
		details.IsGuest = *override.IsGuest
	}
	if override.TotalBookings != nil {
		details.TotalBookings = *override.TotalBookings
	}
	if override.Wishlist != nil {
		details.Wishlist = datatypes.NewJSONSlice(*override.Wishlist)
	}
}

// DeleteUser removes the record entirely and returns its final snapshot.
// Sub-profiles and dependent rows follow through the schema's cascading
// foreign keys.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	id, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(id))
	return user, nil
}

// BecomeHost transitions a guest to the host role through the update
// path, synthesizing hostDetails the same way registration does.
func (s *UserServiceImpl) BecomeHost(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role != models.UserRoleGuest {
		return nil, apperrors.NewBadRequestError("Only guests can become hosts")
	}

	user.Role = models.UserRoleHost
	if user.HostDetails == nil {
		user.HostDetails = buildHostDetails(models.UserRoleHost, nil)
		user.HostDetails.UserID = user.ID
	} else {
		user.HostDetails.IsHost = true
		if user.HostDetails.HostSince == nil {
			now := time.Now()
			user.HostDetails.HostSince = &now
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	return user, nil
}

// --- Wishlist (guestDetails.wishlist, set semantics) ---

func (s *UserServiceImpl) GetWishlist(ctx context.Context, userID string) ([]string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.GuestDetails == nil {
		return []string{}, nil
	}
	return user.GuestDetails.Wishlist, nil
}

func (s *UserServiceImpl) AddToWishlist(ctx context.Context, userID, propertyID string) ([]string, error) {
	propertyID, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.propertyRepo.FindByID(ctx, propertyID); err != nil {
		if err == repositories.ErrPropertyNotFound {
			return nil, apperrors.ErrNotFound(err, "property", "Property not found")
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if user.GuestDetails == nil {
		user.GuestDetails = buildGuestDetails(models.UserRoleGuest, nil)
		user.GuestDetails.UserID = user.ID
	}

	// Set semantics: adding an existing entry is a no-op.
	for _, existing := range user.GuestDetails.Wishlist {
		if existing == propertyID {
			return user.GuestDetails.Wishlist, nil
		}
	}

	user.GuestDetails.Wishlist = append(user.GuestDetails.Wishlist, propertyID)
	if err := s.userRepo.SaveGuestDetails(ctx, user.GuestDetails); err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	return user.GuestDetails.Wishlist, nil
}

func (s *UserServiceImpl) RemoveFromWishlist(ctx context.Context, userID, propertyID string) ([]string, error) {
	propertyID, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.GuestDetails == nil {
		return []string{}, nil
	}

	filtered := user.GuestDetails.Wishlist[:0]
	for _, existing := range user.GuestDetails.Wishlist {
		if existing != propertyID {
			filtered = append(filtered, existing)
		}
	}
	user.GuestDetails.Wishlist = filtered

	if err := s.userRepo.SaveGuestDetails(ctx, user.GuestDetails); err != nil {
		return nil, apperrors.InternalError(err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	return user.GuestDetails.Wishlist, nil
}
