package handlers

import (
	"staynest/internal/auth"
	"staynest/internal/services"
	"staynest/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	UserHandler     *UserHandler
	AuthHandler     *AuthHandler
	PropertyHandler *PropertyHandler
	BookingHandler  *BookingHandler
	ReviewHandler   *ReviewHandler
	WishlistHandler *WishlistHandler
}

func NewAppHandlers(container *services.ServiceContainer, v *validator.Validator, tokens *auth.TokenManager) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		UserHandler:     NewUserHandler(base, container.UserService, tokens),
		AuthHandler:     NewAuthHandler(base, container.AuthService, container.UserService, tokens),
		PropertyHandler: NewPropertyHandler(base, container.PropertyService, container.ReviewService, tokens),
		BookingHandler:  NewBookingHandler(base, container.BookingService, tokens),
		ReviewHandler:   NewReviewHandler(base, container.ReviewService, tokens),
		WishlistHandler: NewWishlistHandler(base, container.UserService, tokens),
	}
}
