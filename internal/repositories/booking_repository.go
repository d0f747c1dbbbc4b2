package repositories

import (
	"context"
	"errors"

	"staynest/internal/models"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	FindByGuest(ctx context.Context, guestID string) ([]models.Booking, error)
	FindAll(ctx context.Context) ([]models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
}

type BookingRepositoryImpl struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &BookingRepositoryImpl{db: db}
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *models.Booking) error {
	return conn(ctx, r.db).Create(booking).Error
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := conn(ctx, r.db).Preload("Property").First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) FindByGuest(ctx context.Context, guestID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := conn(ctx, r.db).Preload("Property").
		Find(&bookings, "guest_id = ?", guestID).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) FindAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := conn(ctx, r.db).Preload("Property").Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepositoryImpl) Save(ctx context.Context, booking *models.Booking) error {
	return conn(ctx, r.db).Save(booking).Error
}
