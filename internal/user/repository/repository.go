// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/user/model"
)

// Repository defines the interface for user data access operations.
// Reads only see users that are not soft-deleted.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *model.User) error

	// GetByUserName finds an active user by username.
	GetByUserName(ctx context.Context, userName string) (*model.User, error)

	// List returns all active users ordered by username.
	List(ctx context.Context) ([]model.User, error)

	// Update overwrites the mutable fields of an active user.
	Update(ctx context.Context, user *model.User) error

	// SoftDelete marks an active user as deleted.
	SoftDelete(ctx context.Context, userName string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new user repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func (r *repository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("is_deleted = ?", false)
}

// Create inserts a new user.
func (r *repository) Create(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Create called", "user_name", user.UserName)

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Debugw("Create user already exists", "user_name", user.UserName)
			return model.ErrUserAlreadyExists
		}
		r.logger.Errorw("Create database error", "user_name", user.UserName, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "user_name", user.UserName, "role", user.Role)
	return nil
}

// GetByUserName finds an active user by username.
func (r *repository) GetByUserName(ctx context.Context, userName string) (*model.User, error) {
	r.logger.Debugw("GetByUserName called", "user_name", userName)

	var user model.User
	err := r.active(ctx).
		Where("user_name = ?", userName).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByUserName user not found", "user_name", userName)
			return nil, model.ErrUserNotFound
		}
		r.logger.Errorw("GetByUserName database error", "user_name", userName, "error", err)
		return nil, err
	}

	return &user, nil
}

// List returns all active users ordered by username.
func (r *repository) List(ctx context.Context) ([]model.User, error) {
	r.logger.Debugw("List called")

	users := []model.User{}
	if err := r.active(ctx).Order("user_name").Find(&users).Error; err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}

	r.logger.Debugw("List completed", "count", len(users))
	return users, nil
}

// Update overwrites the mutable fields of an active user.
func (r *repository) Update(ctx context.Context, user *model.User) error {
	r.logger.Debugw("Update called", "user_name", user.UserName)

	result := r.active(ctx).
		Where("user_name = ?", user.UserName).
		Select("first_name", "last_name", "password_hash", "enabled", "phone", "role", "gender", "updated_at").
		Updates(user)

	if result.Error != nil {
		r.logger.Errorw("Update database error", "user_name", user.UserName, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Debugw("Update user not found", "user_name", user.UserName)
		return model.ErrUserNotFound
	}

	r.logger.Infow("Update completed", "user_name", user.UserName)
	return nil
}

// SoftDelete marks an active user as deleted.
func (r *repository) SoftDelete(ctx context.Context, userName string) error {
	r.logger.Debugw("SoftDelete called", "user_name", userName)

	result := r.active(ctx).
		Where("user_name = ?", userName).
		Update("is_deleted", true)

	if result.Error != nil {
		r.logger.Errorw("SoftDelete database error", "user_name", userName, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Debugw("SoftDelete user not found", "user_name", userName)
		return model.ErrUserNotFound
	}

	r.logger.Infow("SoftDelete completed", "user_name", userName)
	return nil
}
