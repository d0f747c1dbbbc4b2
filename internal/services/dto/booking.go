package dto

import "time"

type CreateBookingRequest struct {
	PropertyID string    `json:"propertyId" validate:"required"`
	CheckIn    time.Time `json:"checkIn" validate:"required"`
	CheckOut   time.Time `json:"checkOut" validate:"required,gtfield=CheckIn"`
	Guests     int       `json:"guests" validate:"omitempty,min=1"`
}
