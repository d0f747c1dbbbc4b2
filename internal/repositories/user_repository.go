package repositories

import (
	"context"
	"errors"

	"staynest/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error

	SaveHostDetails(ctx context.Context, details *models.HostDetails) error
	SaveGuestDetails(ctx context.Context, details *models.GuestDetails) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	err := conn(ctx, r.db).Create(user).Error
	if err != nil {
		// Concurrent registrations race at the unique email index; the
		// second writer loses and must see a duplicate, not a 500.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).
		Preload("HostDetails").Preload("GuestDetails").
		First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).
		Preload("HostDetails").Preload("GuestDetails").
		First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).
		First(&user, "verification_token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := conn(ctx, r.db).
		Preload("HostDetails").Preload("GuestDetails").
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) Save(ctx context.Context, user *models.User) error {
	err := conn(ctx, r.db).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := conn(ctx, r.db).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SaveHostDetails(ctx context.Context, details *models.HostDetails) error {
	return conn(ctx, r.db).Save(details).Error
}

func (r *UserRepositoryImpl) SaveGuestDetails(ctx context.Context, details *models.GuestDetails) error {
	return conn(ctx, r.db).Save(details).Error
}
