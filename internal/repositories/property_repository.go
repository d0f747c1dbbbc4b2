package repositories

import (
	"context"
	"errors"

	"staynest/internal/models"

	"gorm.io/gorm"
)

var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilter narrows the listing; zero values mean "no constraint".
type PropertyFilter struct {
	City     string
	HostID   string
	MinPrice float64
	MaxPrice float64
}

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id string) (*models.Property, error)
	FindWithFilter(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	Save(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error
}

type PropertyRepositoryImpl struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &PropertyRepositoryImpl{db: db}
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *models.Property) error {
	return conn(ctx, r.db).Create(property).Error
}

func (r *PropertyRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := conn(ctx, r.db).First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindWithFilter(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	q := conn(ctx, r.db).Model(&models.Property{})
	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.HostID != "" {
		q = q.Where("host_id = ?", filter.HostID)
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_night >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_night <= ?", filter.MaxPrice)
	}

	var properties []models.Property
	err := q.Find(&properties).Error
	return properties, err
}

func (r *PropertyRepositoryImpl) Save(ctx context.Context, property *models.Property) error {
	return conn(ctx, r.db).Save(property).Error
}

func (r *PropertyRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.db).Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
