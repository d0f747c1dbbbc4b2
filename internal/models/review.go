package models

type Review struct {
	BaseModel
	PropertyID string `gorm:"not null;index" json:"propertyId"`
	GuestID    string `gorm:"not null;index" json:"guestId"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string `json:"comment"`

	// Relations
	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	Guest    *User     `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
}
