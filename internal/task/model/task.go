// Package model defines the task entity and its transfer objects.
package model

import (
	"time"

	"github.com/festy23/ticketing/internal/status"
)

// Task is a piece of a project assigned to one employee.
type Task struct {
	ID               int64         `gorm:"primaryKey;column:id;autoIncrement"`
	ProjectCode      string        `gorm:"column:project_code;type:varchar(64);not null;index:idx_tasks_project"`
	AssignedEmployee string        `gorm:"column:assigned_employee;type:varchar(64);not null;index:idx_tasks_employee_status,priority:1"`
	TaskSubject      string        `gorm:"column:task_subject;type:varchar(255);not null"`
	TaskDetail       string        `gorm:"column:task_detail;type:text"`
	TaskStatus       status.Status `gorm:"column:task_status;type:varchar(32);not null;index:idx_tasks_employee_status,priority:2"`
	AssignedDate     time.Time     `gorm:"column:assigned_date;type:date;not null"`
	CreatedAt        time.Time     `gorm:"column:created_at"`
	UpdatedAt        time.Time     `gorm:"column:updated_at"`
}

// TableName specifies the table name for GORM.
func (Task) TableName() string {
	return "tasks"
}
