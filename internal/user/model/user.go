// Package model defines the user entity and its transfer objects.
package model

import (
	"time"

	"github.com/festy23/ticketing/internal/auth"
)

// User is a person who can sign in and own projects or tasks.
// Deleted users stay in the table with IsDeleted set.
type User struct {
	UserName     string    `gorm:"primaryKey;column:user_name;type:varchar(64)"`
	FirstName    string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string    `gorm:"column:last_name;type:varchar(100);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Enabled      bool      `gorm:"column:enabled;not null"`
	Phone        string    `gorm:"column:phone;type:varchar(32)"`
	Role         auth.Role `gorm:"column:role;type:varchar(32);not null;index:idx_users_role"`
	Gender       string    `gorm:"column:gender;type:varchar(16)"`
	IsDeleted    bool      `gorm:"column:is_deleted;not null;index:idx_users_is_deleted"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
