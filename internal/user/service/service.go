// Package service provides business logic layer for user module.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/user/model"
	"github.com/festy23/ticketing/internal/user/repository"
)

// ProjectCounter reports unfinished projects managed by a user.
type ProjectCounter interface {
	CountUnfinishedByManager(ctx context.Context, userName string) (int64, error)
}

// TaskCounter reports unfinished tasks assigned to a user.
type TaskCounter interface {
	CountUnfinishedByEmployee(ctx context.Context, userName string) (int64, error)
}

// Service defines the interface for user business logic operations.
type Service interface {
	// List returns all active users.
	List(ctx context.Context) ([]model.UserDTO, error)

	// Get returns an active user by username.
	Get(ctx context.Context, userName string) (*model.UserDTO, error)

	// Create registers a new enabled user with a hashed password.
	Create(ctx context.Context, dto *model.UserDTO) error

	// Update changes profile fields; the password changes only when one is given.
	Update(ctx context.Context, dto *model.UserDTO) error

	// Delete soft-deletes a user that owns no unfinished work.
	Delete(ctx context.Context, userName string) error
}

type service struct {
	repo     repository.Repository
	projects ProjectCounter
	tasks    TaskCounter
	logger   *zap.SugaredLogger
	cost     int
}

// New creates a new user service instance.
func New(
	repo repository.Repository,
	projects ProjectCounter,
	tasks TaskCounter,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		projects: projects,
		tasks:    tasks,
		logger:   logger,
		cost:     bcrypt.DefaultCost,
	}
}

// List returns all active users.
func (s *service) List(ctx context.Context) ([]model.UserDTO, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, model.ToDTO(&users[i]))
	}
	return dtos, nil
}

// Get returns an active user by username.
func (s *service) Get(ctx context.Context, userName string) (*model.UserDTO, error) {
	if userName == "" {
		return nil, model.ErrInvalidUserName
	}

	user, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}

	dto := model.ToDTO(user)
	return &dto, nil
}

// Create registers a new enabled user with a hashed password.
func (s *service) Create(ctx context.Context, dto *model.UserDTO) error {
	s.logger.Debugw("Create called", "user_name", dto.UserName, "role", dto.Role)

	role, err := s.validate(dto)
	if err != nil {
		return err
	}
	if dto.PassWord == "" {
		return model.ErrPasswordRequired
	}

	hash, err := s.hash(dto.PassWord)
	if err != nil {
		return err
	}

	enabled := true
	if dto.Enabled != nil {
		enabled = *dto.Enabled
	}

	user := &model.User{
		UserName:     dto.UserName,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		PasswordHash: hash,
		Enabled:      enabled,
		Phone:        dto.Phone,
		Role:         role,
		Gender:       dto.Gender,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Infow("Create completed", "user_name", user.UserName, "role", role)
	return nil
}

// Update changes profile fields; the password changes only when one is given.
func (s *service) Update(ctx context.Context, dto *model.UserDTO) error {
	s.logger.Debugw("Update called", "user_name", dto.UserName)

	role, err := s.validate(dto)
	if err != nil {
		return err
	}

	user, err := s.repo.GetByUserName(ctx, dto.UserName)
	if err != nil {
		return err
	}

	user.FirstName = dto.FirstName
	user.LastName = dto.LastName
	user.Phone = dto.Phone
	user.Role = role
	user.Gender = dto.Gender
	if dto.Enabled != nil {
		user.Enabled = *dto.Enabled
	}
	if dto.PassWord != "" {
		if user.PasswordHash, err = s.hash(dto.PassWord); err != nil {
			return err
		}
	}

	return s.repo.Update(ctx, user)
}

// Delete soft-deletes a user that owns no unfinished work.
func (s *service) Delete(ctx context.Context, userName string) error {
	s.logger.Debugw("Delete called", "user_name", userName)

	if userName == "" {
		return model.ErrInvalidUserName
	}

	user, err := s.repo.GetByUserName(ctx, userName)
	if err != nil {
		return err
	}

	deletable, err := s.isDeletable(ctx, user)
	if err != nil {
		return err
	}
	if !deletable {
		s.logger.Infow("Delete rejected", "user_name", userName, "role", user.Role)
		return model.ErrUserNotDeletable
	}

	return s.repo.SoftDelete(ctx, userName)
}

func (s *service) isDeletable(ctx context.Context, user *model.User) (bool, error) {
	var (
		count int64
		err   error
	)
	switch user.Role {
	case auth.RoleManager:
		count, err = s.projects.CountUnfinishedByManager(ctx, user.UserName)
	case auth.RoleEmployee:
		count, err = s.tasks.CountUnfinishedByEmployee(ctx, user.UserName)
	default:
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *service) validate(dto *model.UserDTO) (auth.Role, error) {
	if dto.UserName == "" {
		return "", model.ErrInvalidUserName
	}
	role, err := model.ParseRole(dto.Role)
	if err != nil {
		return "", err
	}
	if dto.PassWord != dto.ConfirmPassWord {
		return "", model.ErrPasswordMismatch
	}
	return role, nil
}

func (s *service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", model.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
