package userrepo

import (
	"context"
	"errors"

	"fabtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements account persistence using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create saves a new account and writes the database-assigned identity back
// into the record. A duplicate email surfaces as a StateConflictError.
func (r *GormUserRepository) Create(ctx context.Context, user *UserDTO) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("email is already registered", err)
		}
		return err
	}
	return nil
}

// GetByEmail retrieves an account by its email address.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*UserDTO, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}
	return &dto, nil
}

// GetByID retrieves an account by its identity.
func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*UserDTO, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id)
		}
		return nil, err
	}
	return &dto, nil
}
