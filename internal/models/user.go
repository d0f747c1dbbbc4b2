package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Name           string   `gorm:"not null" json:"name"`
	Email          string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	Role           UserRole `gorm:"type:varchar(20);default:'guest'" json:"role"`
	Phone          string   `json:"phone,omitempty"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	IsVerified     bool     `gorm:"default:false" json:"isVerified"`

	VerificationToken string `json:"-"`

	// Role-scoped sub-profiles. Both may exist at the storage level;
	// the one matching Role is the authoritative block. The cascade lets
	// a user row be deleted without first clearing its sub-profiles.
	HostDetails  *HostDetails  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"hostDetails,omitempty"`
	GuestDetails *GuestDetails `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"guestDetails,omitempty"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

type HostDetails struct {
	BaseModel
	UserID        string     `gorm:"not null;uniqueIndex" json:"-"`
	IsHost        bool       `gorm:"default:false" json:"isHost"`
	HostSince     *time.Time `json:"hostSince,omitempty"`
	TotalListings int        `gorm:"default:0" json:"totalListings"`
	AverageRating float64    `gorm:"default:0" json:"averageRating"`
	TotalReviews  int        `gorm:"default:0" json:"totalReviews"`
}

type GuestDetails struct {
	BaseModel
	UserID        string                      `gorm:"not null;uniqueIndex" json:"-"`
	IsGuest       bool                        `gorm:"default:false" json:"isGuest"`
	TotalBookings int                         `gorm:"default:0" json:"totalBookings"`
	Wishlist      datatypes.JSONSlice[string] `json:"wishlist"`
}
