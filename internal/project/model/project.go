// Package model defines the project entity and its transfer objects.
package model

import (
	"time"

	"github.com/festy23/ticketing/internal/status"
)

// Project is a unit of work owned by a manager and split into tasks.
type Project struct {
	ProjectCode     string        `gorm:"primaryKey;column:project_code;type:varchar(64)"`
	ProjectName     string        `gorm:"column:project_name;type:varchar(255)"`
	ManagerUserName string        `gorm:"column:manager_user_name;type:varchar(64);index:idx_projects_manager"`
	StartDate       *time.Time    `gorm:"column:start_date;type:date"`
	EndDate         *time.Time    `gorm:"column:end_date;type:date"`
	ProjectDetail   string        `gorm:"column:project_detail;type:text"`
	ProjectStatus   status.Status `gorm:"column:project_status;type:varchar(32);not null"`
	CreatedAt       time.Time     `gorm:"column:created_at"`
	UpdatedAt       time.Time     `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM.
func (Project) TableName() string {
	return "projects"
}
