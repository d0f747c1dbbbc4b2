package services

import (
	"context"

	"staynest/internal/logger"
	"staynest/internal/models"
	"staynest/internal/repositories"
	"staynest/internal/services/dto"
	"staynest/pkg/apperrors"
)

type ReviewService interface {
	CreateReview(ctx context.Context, guestID string, req *dto.CreateReviewRequest) (*models.Review, error)
	GetReviewsByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
}

type ReviewServiceImpl struct {
	reviewRepo   repositories.ReviewRepository
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	cache        UserCache
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	cacheClient UserCache,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		cache:        cacheClient,
	}
}

func (s *ReviewServiceImpl) CreateReview(ctx context.Context, guestID string, req *dto.CreateReviewRequest) (*models.Review, error) {
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
		return nil, apperrors.NewBadRequestError("You cannot review your own property")
	}

	review := &models.Review{
		PropertyID: property.ID,
		GuestID:    guestID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.foldIntoHostRating(ctx, property.HostID, req.Rating)

	logger.CtxInfo(ctx, "Review created",
		"review_id", review.ID, "property_id", property.ID, "rating", req.Rating)
	return review, nil
}

func (s *ReviewServiceImpl) GetReviewsByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	propertyID, err := parseID("property", propertyID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

// foldIntoHostRating folds one new rating into the host's running average
// without rescanning past reviews.
func (s *ReviewServiceImpl) foldIntoHostRating(ctx context.Context, hostID string, rating int) {
	host, err := s.userRepo.FindByID(ctx, hostID)
	if err != nil || host.HostDetails == nil {
		return
	}

	d := host.HostDetails
	total := d.AverageRating*float64(d.TotalReviews) + float64(rating)
	d.TotalReviews++
	d.AverageRating = total / float64(d.TotalReviews)

	if err := s.userRepo.SaveHostDetails(ctx, d); err != nil {
		logger.CtxWarn(ctx, "Failed to update host rating",
			"host_id", hostID, "error", err)
		return
	}
	_ = s.cache.Delete(ctx, userCacheKey(hostID))
}
