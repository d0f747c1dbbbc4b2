package models

import "gorm.io/datatypes"

type Property struct {
	BaseModel
	HostID        string                      `gorm:"not null;index" json:"hostId"`
	Title         string                      `gorm:"not null" json:"title"`
	Description   string                      `json:"description"`
	City          string                      `gorm:"index" json:"city"`
	Address       string                      `json:"address"`
	PricePerNight float64                     `gorm:"not null" json:"pricePerNight"`
	MaxGuests     int                         `gorm:"default:1" json:"maxGuests"`
	Images        datatypes.JSONSlice[string] `json:"images"`

	// Relations
	Host *User `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"-"`
}
