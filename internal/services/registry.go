package services

import (
	"staynest/internal/auth"
	"staynest/internal/cache"
	"staynest/internal/email"
	"staynest/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared set of repositories.
type ServiceContainer struct {
	UserService     UserService
	AuthService     AuthService
	PropertyService PropertyService
	BookingService  BookingService
	ReviewService   ReviewService
}

func NewServiceContainer(
	db *gorm.DB,
	tokens *auth.TokenManager,
	emailSender email.Provider,
	cacheClient *cache.Client,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	return &ServiceContainer{
		UserService:     NewUserService(userRepo, propertyRepo, emailSender, cacheClient),
		AuthService:     NewAuthService(userRepo, refreshTokenRepo, tokens),
		PropertyService: NewPropertyService(propertyRepo, userRepo, cacheClient),
		BookingService:  NewBookingService(bookingRepo, propertyRepo, userRepo, cacheClient),
		ReviewService:   NewReviewService(reviewRepo, propertyRepo, userRepo, cacheClient),
	}
}
