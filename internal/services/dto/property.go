package dto

type CreatePropertyRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	City          string   `json:"city" validate:"required"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,gt=0"`
	MaxGuests     int      `json:"maxGuests" validate:"omitempty,min=1"`
	Images        []string `json:"images"`
}

type UpdatePropertyRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	City          *string   `json:"city"`
	Address       *string   `json:"address"`
	PricePerNight *float64  `json:"pricePerNight" validate:"omitempty,gt=0"`
	MaxGuests     *int      `json:"maxGuests" validate:"omitempty,min=1"`
	Images        *[]string `json:"images"`
}

type PropertyFilterRequest struct {
	City     string  `form:"city"`
	MinPrice float64 `form:"minPrice"`
	MaxPrice float64 `form:"maxPrice"`
}
