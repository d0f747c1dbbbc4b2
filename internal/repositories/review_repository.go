package repositories

import (
	"context"
	"errors"

	"staynest/internal/models"

	"gorm.io/gorm"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
	FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *models.Review) error {
	return conn(ctx, r.db).Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := conn(ctx, r.db).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	var reviews []models.Review
	err := conn(ctx, r.db).Find(&reviews, "property_id = ?", propertyID).Error
	return reviews, err
}
