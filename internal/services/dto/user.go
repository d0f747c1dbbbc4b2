package dto

import (
	"time"

	"staynest/internal/models"
)

// HostDetailsOverride carries caller-supplied hostDetails fields.
// Supplied values take precedence over synthesized defaults, including
// isHost and hostSince.
type HostDetailsOverride struct {
	IsHost        *bool      `json:"isHost"`
	HostSince     *time.Time `json:"hostSince"`
	TotalListings *int       `json:"totalListings"`
	AverageRating *float64   `json:"averageRating"`
	TotalReviews  *int       `json:"totalReviews"`
}

type GuestDetailsOverride struct {
	IsGuest       *bool     `json:"isGuest"`
	TotalBookings *int      `json:"totalBookings"`
	Wishlist      *[]string `json:"wishlist"`
}

type RegisterRequest struct {
	Name           string                `json:"name" validate:"required"`
	Email          string                `json:"email" validate:"required,email"`
	Password       string                `json:"password" validate:"required,min=6"`
	Role           models.UserRole       `json:"role" validate:"omitempty,is-user-role"`
	Phone          string                `json:"phone"`
	ProfilePicture string                `json:"profilePicture"`
	IsVerified     bool                  `json:"isVerified"`
	HostDetails    *HostDetailsOverride  `json:"hostDetails"`
	GuestDetails   *GuestDetailsOverride `json:"guestDetails"`
}

// UpdateUserRequest is a partial patch; nil fields stay untouched.
type UpdateUserRequest struct {
	Name           *string               `json:"name"`
	Email          *string               `json:"email" validate:"omitempty,email"`
	Password       *string               `json:"password" validate:"omitempty,min=6"`
	Role           *models.UserRole      `json:"role" validate:"omitempty,is-user-role"`
	Phone          *string               `json:"phone"`
	ProfilePicture *string               `json:"profilePicture"`
	IsVerified     *bool                 `json:"isVerified"`
	HostDetails    *HostDetailsOverride  `json:"hostDetails"`
	GuestDetails   *GuestDetailsOverride `json:"guestDetails"`
}
