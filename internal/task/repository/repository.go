// Package repository provides data access layer for task module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/status"
	"github.com/festy23/ticketing/internal/task/model"
)

// Repository defines the interface for task data access operations.
type Repository interface {
	// Create inserts a task and fills its generated id.
	Create(ctx context.Context, task *model.Task) error

	// GetByID finds a task by id.
	GetByID(ctx context.Context, id int64) (*model.Task, error)

	// List returns all tasks ordered by id.
	List(ctx context.Context) ([]model.Task, error)

	// Update overwrites the mutable fields of a task.
	Update(ctx context.Context, task *model.Task) error

	// UpdateStatus sets the status of one task.
	UpdateStatus(ctx context.Context, id int64, st status.Status) error

	// Delete removes a task.
	Delete(ctx context.Context, id int64) error

	// ListByEmployeeStatus returns tasks of employee with status st.
	ListByEmployeeStatus(ctx context.Context, employee string, st status.Status) ([]model.Task, error)

	// ListByEmployeeStatusNot returns tasks of employee whose status is not st.
	ListByEmployeeStatusNot(ctx context.Context, employee string, st status.Status) ([]model.Task, error)

	// UpdateStatusByProject sets the status of every task in a project.
	UpdateStatusByProject(ctx context.Context, projectCode string, st status.Status) (int64, error)

	// DeleteByProject removes every task in a project.
	DeleteByProject(ctx context.Context, projectCode string) (int64, error)

	// CountByProject returns the complete and unfinished task counts of a project.
	CountByProject(ctx context.Context, projectCode string) (model.StatusCounts, error)

	// CountUnfinishedByEmployee counts tasks of employee not yet complete.
	CountUnfinishedByEmployee(ctx context.Context, employee string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new task repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a task and fills its generated id.
func (r *repository) Create(ctx context.Context, task *model.Task) error {
	r.logger.Debugw("Create called", "project_code", task.ProjectCode, "employee", task.AssignedEmployee)

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		r.logger.Errorw("Create database error", "project_code", task.ProjectCode, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "task_id", task.ID, "project_code", task.ProjectCode)
	return nil
}

// GetByID finds a task by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	r.logger.Debugw("GetByID called", "task_id", id)

	var task model.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByID task not found", "task_id", id)
			return nil, model.ErrTaskNotFound
		}
		r.logger.Errorw("GetByID database error", "task_id", id, "error", err)
		return nil, err
	}

	return &task, nil
}

// List returns all tasks ordered by id.
func (r *repository) List(ctx context.Context) ([]model.Task, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByEmployeeStatus returns tasks of employee with status st.
func (r *repository) ListByEmployeeStatus(ctx context.Context, employee string, st status.Status) ([]model.Task, error) {
	r.logger.Debugw("ListByEmployeeStatus called", "employee", employee, "status", st)
	return r.find(r.db.WithContext(ctx).Where("assigned_employee = ? AND task_status = ?", employee, st))
}

// ListByEmployeeStatusNot returns tasks of employee whose status is not st.
func (r *repository) ListByEmployeeStatusNot(ctx context.Context, employee string, st status.Status) ([]model.Task, error) {
	r.logger.Debugw("ListByEmployeeStatusNot called", "employee", employee, "status", st)
	return r.find(r.db.WithContext(ctx).Where("assigned_employee = ? AND task_status <> ?", employee, st))
}

func (r *repository) find(q *gorm.DB) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := q.Order("id").Find(&tasks).Error; err != nil {
		r.logger.Errorw("find tasks database error", "error", err)
		return nil, err
	}
	return tasks, nil
}

// Update overwrites the mutable fields of a task.
func (r *repository) Update(ctx context.Context, task *model.Task) error {
	r.logger.Debugw("Update called", "task_id", task.ID)

	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", task.ID).
		Select("project_code", "assigned_employee", "task_subject", "task_detail", "task_status", "updated_at").
		Updates(task)

	if result.Error != nil {
		r.logger.Errorw("Update database error", "task_id", task.ID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}

	r.logger.Infow("Update completed", "task_id", task.ID)
	return nil
}

// UpdateStatus sets the status of one task.
func (r *repository) UpdateStatus(ctx context.Context, id int64, st status.Status) error {
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("id = ?", id).
		Update("task_status", st)

	if result.Error != nil {
		r.logger.Errorw("UpdateStatus database error", "task_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}

	r.logger.Infow("UpdateStatus completed", "task_id", id, "status", st)
	return nil
}

// Delete removes a task.
func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{})
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "task_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrTaskNotFound
	}

	r.logger.Infow("Delete completed", "task_id", id)
	return nil
}

// UpdateStatusByProject sets the status of every task in a project.
func (r *repository) UpdateStatusByProject(ctx context.Context, projectCode string, st status.Status) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("project_code = ?", projectCode).
		Update("task_status", st)

	if result.Error != nil {
		r.logger.Errorw("UpdateStatusByProject database error", "project_code", projectCode, "error", result.Error)
		return 0, result.Error
	}

	r.logger.Infow("UpdateStatusByProject completed", "project_code", projectCode, "status", st, "count", result.RowsAffected)
	return result.RowsAffected, nil
}

// DeleteByProject removes every task in a project.
func (r *repository) DeleteByProject(ctx context.Context, projectCode string) (int64, error) {
	result := r.db.WithContext(ctx).Where("project_code = ?", projectCode).Delete(&model.Task{})
	if result.Error != nil {
		r.logger.Errorw("DeleteByProject database error", "project_code", projectCode, "error", result.Error)
		return 0, result.Error
	}

	r.logger.Infow("DeleteByProject completed", "project_code", projectCode, "count", result.RowsAffected)
	return result.RowsAffected, nil
}

// CountByProject returns the complete and unfinished task counts of a project.
func (r *repository) CountByProject(ctx context.Context, projectCode string) (model.StatusCounts, error) {
	var rows []struct {
		TaskStatus status.Status
		Total      int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Select("task_status, COUNT(*) AS total").
		Where("project_code = ?", projectCode).
		Group("task_status").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("CountByProject database error", "project_code", projectCode, "error", err)
		return model.StatusCounts{}, err
	}

	var counts model.StatusCounts
	for _, row := range rows {
		if row.TaskStatus.IsComplete() {
			counts.Complete += row.Total
		} else {
			counts.Unfinished += row.Total
		}
	}
	return counts, nil
}

// CountUnfinishedByEmployee counts tasks of employee not yet complete.
func (r *repository) CountUnfinishedByEmployee(ctx context.Context, employee string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Task{}).
		Where("assigned_employee = ? AND task_status <> ?", employee, status.Complete).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("CountUnfinishedByEmployee database error", "employee", employee, "error", err)
		return 0, err
	}
	return count, nil
}
