package services

import (
	"context"
	"math"
	"time"

	"staynest/internal/logger"
	"staynest/internal/models"
	"staynest/internal/repositories"
	"staynest/internal/services/dto"
	"staynest/pkg/apperrors"
)

type BookingService interface {
	CreateBooking(ctx context.Context, guestID string, req *dto.CreateBookingRequest) (*models.Booking, error)
	GetBookings(ctx context.Context, actorID string, actorRole models.UserRole) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, id, actorID string, actorRole models.UserRole) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, id, actorID string, actorRole models.UserRole) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, actorID string, actorRole models.UserRole) (*models.Booking, error)
}

type BookingServiceImpl struct {
	bookingRepo  repositories.BookingRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	cache        UserCache
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	cacheClient UserCache,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		cache:        cacheClient,
	}
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, guestID string, req *dto.CreateBookingRequest) (*models.Booking, error) {
	propertyID, err := parseID("property", req.PropertyID)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if err == repositories.ErrPropertyNotFound {
			return nil, apperrors.ErrNotFound(err, "property", "Property not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if property.HostID == guestID {
		return nil, apperrors.NewBadRequestError("You cannot book your own property")
	}

	if !req.CheckOut.After(req.CheckIn) {
		return nil, apperrors.NewBadRequestError("Check-out date must be after check-in date")
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}
	if guests > property.MaxGuests {
		return nil, apperrors.NewBadRequestError("Guest count exceeds property capacity")
	}

	nights := nightsBetween(req.CheckIn, req.CheckOut)
	booking := &models.Booking{
		PropertyID: property.ID,
		GuestID:    guestID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     guests,
		TotalPrice: float64(nights) * property.PricePerNight,
		Status:     models.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}
	booking.Property = property

	s.bumpBookingCount(ctx, guestID, 1)

	logger.CtxInfo(ctx, "Booking created",
		"booking_id", booking.ID, "property_id", property.ID,
		"guest_id", guestID, "nights", nights)
	return booking, nil
}

func (s *BookingServiceImpl) GetBookings(ctx context.Context, actorID string, actorRole models.UserRole) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if actorRole == models.UserRoleAdmin {
		bookings, err = s.bookingRepo.FindAll(ctx)
	} else {
		bookings, err = s.bookingRepo.FindByGuest(ctx, actorID)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return bookings, nil
}

func (s *BookingServiceImpl) GetBookingByID(ctx context.Context, id, actorID string, actorRole models.UserRole) (*models.Booking, error) {
	id, err := parseID("booking", id)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrBookingNotFound {
			return nil, apperrors.ErrNotFound(err, "booking", "Booking not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.canAccessBooking(booking, actorID, actorRole) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return booking, nil
}

// ConfirmBooking moves a pending booking to confirmed. Only the property
// host or an admin may confirm; the guest waits.
func (s *BookingServiceImpl) ConfirmBooking(ctx context.Context, id, actorID string, actorRole models.UserRole) (*models.Booking, error) {
	booking, err := s.GetBookingByID(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	isPropertyHost := booking.Property != nil && booking.Property.HostID == actorID
	if actorRole != models.UserRoleAdmin && !isPropertyHost {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if booking.Status != models.BookingStatusPending {
		return nil, apperrors.NewBadRequestError("Only pending bookings can be confirmed")
	}

	booking.Status = models.BookingStatusConfirmed
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Booking confirmed",
		"booking_id", booking.ID, "actor_id", actorID)
	return booking, nil
}

func (s *BookingServiceImpl) CancelBooking(ctx context.Context, id, actorID string, actorRole models.UserRole) (*models.Booking, error) {
	booking, err := s.GetBookingByID(ctx, id, actorID, actorRole)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil, apperrors.NewBadRequestError("Booking is already cancelled")
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Booking cancelled",
		"booking_id", booking.ID, "actor_id", actorID)
	return booking, nil
}

// canAccessBooking admits the booking guest, the property host and admins.
func (s *BookingServiceImpl) canAccessBooking(booking *models.Booking, actorID string, actorRole models.UserRole) bool {
	if actorRole == models.UserRoleAdmin {
		return true
	}
	if booking.GuestID == actorID {
		return true
	}
	return booking.Property != nil && booking.Property.HostID == actorID
}

// bumpBookingCount adjusts the guest's booking counter, never below zero.
func (s *BookingServiceImpl) bumpBookingCount(ctx context.Context, guestID string, delta int) {
	guest, err := s.userRepo.FindByID(ctx, guestID)
	if err != nil || guest.GuestDetails == nil {
		return
	}
	guest.GuestDetails.TotalBookings += delta
	if guest.GuestDetails.TotalBookings < 0 {
		guest.GuestDetails.TotalBookings = 0
	}
	if err := s.userRepo.SaveGuestDetails(ctx, guest.GuestDetails); err != nil {
		logger.CtxWarn(ctx, "Failed to update guest booking counter",
			"guest_id", guestID, "error", err)
		return
	}
	_ = s.cache.Delete(ctx, userCacheKey(guestID))
}

// nightsBetween counts whole nights, rounding partial days up.
func nightsBetween(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
