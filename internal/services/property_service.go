package services

import (
	"context"

	"staynest/internal/logger"
	"staynest/internal/models"
	"staynest/internal/repositories"
	"staynest/internal/services/dto"
	"staynest/pkg/apperrors"

	"gorm.io/datatypes"
)

type PropertyService interface {
	CreateProperty(ctx context.Context, hostID string, req *dto.CreatePropertyRequest) (*models.Property, error)
	GetAllProperties(ctx context.Context, filter *dto.PropertyFilterRequest) ([]models.Property, error)
	GetPropertyByID(ctx context.Context, id string) (*models.Property, error)
	GetPropertiesByHost(ctx context.Context, hostID string) ([]models.Property, error)
	UpdateProperty(ctx context.Context, id, actorID string, actorRole models.UserRole, req *dto.UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, id, actorID string, actorRole models.UserRole) error
}

type PropertyServiceImpl struct {
	propertyRepo repositories.PropertyRepository
	userRepo     repositories.UserRepository
	cache        UserCache
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	cacheClient UserCache,
) PropertyService {
	return &PropertyServiceImpl{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		cache:        cacheClient,
	}
}

func (s *PropertyServiceImpl) CreateProperty(ctx context.Context, hostID string, req *dto.CreatePropertyRequest) (*models.Property, error) {
	host, err := s.userRepo.FindByID(ctx, hostID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if host.Role != models.UserRoleHost && host.Role != models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Only hosts can create listings")
	}

	maxGuests := req.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}

	property := &models.Property{
		HostID:        host.ID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		Address:       req.Address,
		PricePerNight: req.PricePerNight,
		MaxGuests:     maxGuests,
		Images:        datatypes.JSONSlice[string](req.Images),
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.bumpListingCount(ctx, host, 1)

	logger.CtxInfo(ctx, "Property created",
		"property_id", property.ID, "host_id", host.ID)
	return property, nil
}

func (s *PropertyServiceImpl) GetAllProperties(ctx context.Context, filter *dto.PropertyFilterRequest) ([]models.Property, error) {
	repoFilter := repositories.PropertyFilter{}
	if filter != nil {
		repoFilter.City = filter.City
		repoFilter.MinPrice = filter.MinPrice
		repoFilter.MaxPrice = filter.MaxPrice
	}

	properties, err := s.propertyRepo.FindWithFilter(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return properties, nil
}

func (s *PropertyServiceImpl) GetPropertyByID(ctx context.Context, id string) (*models.Property, error) {
	id, err := parseID("property", id)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrPropertyNotFound {
			return nil, apperrors.ErrNotFound(err, "property", "Property not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return property, nil
}

func (s *PropertyServiceImpl) GetPropertiesByHost(ctx context.Context, hostID string) ([]models.Property, error) {
	properties, err := s.propertyRepo.FindWithFilter(ctx, repositories.PropertyFilter{HostID: hostID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return properties, nil
}

func (s *PropertyServiceImpl) UpdateProperty(ctx context.Context, id, actorID string, actorRole models.UserRole, req *dto.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.HostID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.PricePerNight != nil {
		property.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		property.MaxGuests = *req.MaxGuests
	}
	if req.Images != nil {
		property.Images = datatypes.JSONSlice[string](*req.Images)
	}

	if err := s.propertyRepo.Save(ctx, property); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return property, nil
}

func (s *PropertyServiceImpl) DeleteProperty(ctx context.Context, id, actorID string, actorRole models.UserRole) error {
	property, err := s.GetPropertyByID(ctx, id)
	if err != nil {
		return err
	}

	if property.HostID != actorID && actorRole != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.propertyRepo.Delete(ctx, property.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if host, err := s.userRepo.FindByID(ctx, property.HostID); err == nil {
		s.bumpListingCount(ctx, host, -1)
	}

	logger.CtxInfo(ctx, "Property deleted",
		"property_id", property.ID, "actor_id", actorID)
	return nil
}

// bumpListingCount adjusts the host's listing counter, never below zero.
// Counter drift is tolerated; the listing itself is the source of truth.
func (s *PropertyServiceImpl) bumpListingCount(ctx context.Context, host *models.User, delta int) {
	if host.HostDetails == nil {
		return
	}
	host.HostDetails.TotalListings += delta
	if host.HostDetails.TotalListings < 0 {
		host.HostDetails.TotalListings = 0
	}
	if err := s.userRepo.SaveHostDetails(ctx, host.HostDetails); err != nil {
		logger.CtxWarn(ctx, "Failed to update host listing counter",
			"host_id", host.ID, "error", err)
		return
	}
	_ = s.cache.Delete(ctx, userCacheKey(host.ID))
}
