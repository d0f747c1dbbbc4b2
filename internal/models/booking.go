package models

import "time"

type Booking struct {
	BaseModel
	PropertyID string        `gorm:"not null;index" json:"propertyId"`
	GuestID    string        `gorm:"not null;index" json:"guestId"`
	CheckIn    time.Time     `gorm:"not null" json:"checkIn"`
	CheckOut   time.Time     `gorm:"not null" json:"checkOut"`
	Guests     int           `gorm:"default:1" json:"guests"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// Relations
	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"property,omitempty"`
	Guest    *User     `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
}
