package model

import "github.com/festy23/ticketing/internal/apperror"

var (
	// ErrUserNotFound indicates that no active user has the given username.
	ErrUserNotFound = apperror.NotFound("user not found")
	// ErrUserAlreadyExists indicates a username collision, including deleted users.
	ErrUserAlreadyExists = apperror.Validation("user already exists")
	// ErrInvalidUserName indicates an empty username.
	ErrInvalidUserName = apperror.Validation("userName is required")
	// ErrInvalidRole indicates an unknown role name.
	ErrInvalidRole = apperror.Validation("role must be one of Admin, Manager, Employee")
	// ErrPasswordRequired indicates a create request without a password.
	ErrPasswordRequired = apperror.Validation("passWord is required")
	// ErrPasswordMismatch indicates passWord and confirmPassWord differ.
	ErrPasswordMismatch = apperror.Validation("passWord and confirmPassWord do not match")
	// ErrPasswordTooLong indicates a password bcrypt cannot hash.
	ErrPasswordTooLong = apperror.Validation("passWord must be at most 72 bytes")
	// ErrUserNotDeletable indicates the user still owns unfinished projects or tasks.
	ErrUserNotDeletable = apperror.Validation("user cannot be deleted: it still owns unfinished projects or tasks")
)
