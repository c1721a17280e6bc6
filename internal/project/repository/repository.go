// Package repository provides data access layer for project module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/project/model"
	"github.com/festy23/ticketing/internal/status"
)

// Repository defines the interface for project data access operations.
type Repository interface {
	// Create inserts a new project.
	Create(ctx context.Context, project *model.Project) error

	// GetByCode finds a project by its code.
	GetByCode(ctx context.Context, code string) (*model.Project, error)

	// List returns all projects ordered by code.
	List(ctx context.Context) ([]model.Project, error)

	// ListByManager returns projects managed by userName ordered by code.
	ListByManager(ctx context.Context, userName string) ([]model.Project, error)

	// Update overwrites the mutable fields of a project.
	Update(ctx context.Context, project *model.Project) error

	// UpdateStatus sets the status of a project.
	UpdateStatus(ctx context.Context, code string, st status.Status) error

	// Delete removes a project.
	Delete(ctx context.Context, code string) error

	// CountUnfinishedByManager counts projects of userName not yet complete.
	CountUnfinishedByManager(ctx context.Context, userName string) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new project repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new project.
func (r *repository) Create(ctx context.Context, project *model.Project) error {
	r.logger.Debugw("Create called", "project_code", project.ProjectCode)

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Debugw("Create project already exists", "project_code", project.ProjectCode)
			return model.ErrProjectAlreadyExists
		}
		r.logger.Errorw("Create database error", "project_code", project.ProjectCode, "error", err)
		return err
	}

	r.logger.Infow("Create completed", "project_code", project.ProjectCode, "manager", project.ManagerUserName)
	return nil
}

// GetByCode finds a project by its code.
func (r *repository) GetByCode(ctx context.Context, code string) (*model.Project, error) {
	r.logger.Debugw("GetByCode called", "project_code", code)

	var project model.Project
	err := r.db.WithContext(ctx).
		Where("project_code = ?", code).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByCode project not found", "project_code", code)
			return nil, model.ErrProjectNotFound
		}
		r.logger.Errorw("GetByCode database error", "project_code", code, "error", err)
		return nil, err
	}

	return &project, nil
}

// List returns all projects ordered by code.
func (r *repository) List(ctx context.Context) ([]model.Project, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByManager returns projects managed by userName ordered by code.
func (r *repository) ListByManager(ctx context.Context, userName string) ([]model.Project, error) {
	r.logger.Debugw("ListByManager called", "manager", userName)
	return r.find(r.db.WithContext(ctx).Where("manager_user_name = ?", userName))
}

func (r *repository) find(q *gorm.DB) ([]model.Project, error) {
	projects := []model.Project{}
	if err := q.Order("project_code").Find(&projects).Error; err != nil {
		r.logger.Errorw("find projects database error", "error", err)
		return nil, err
	}
	return projects, nil
}

// Update overwrites the mutable fields of a project.
func (r *repository) Update(ctx context.Context, project *model.Project) error {
	r.logger.Debugw("Update called", "project_code", project.ProjectCode)

	result := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("project_code = ?", project.ProjectCode).
		Select("project_name", "manager_user_name", "start_date", "end_date", "project_detail", "project_status", "updated_at").
		Updates(project)

	if result.Error != nil {
		r.logger.Errorw("Update database error", "project_code", project.ProjectCode, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}

	r.logger.Infow("Update completed", "project_code", project.ProjectCode)
	return nil
}

// UpdateStatus sets the status of a project.
func (r *repository) UpdateStatus(ctx context.Context, code string, st status.Status) error {
	r.logger.Debugw("UpdateStatus called", "project_code", code, "status", st)

	result := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("project_code = ?", code).
		Update("project_status", st)

	if result.Error != nil {
		r.logger.Errorw("UpdateStatus database error", "project_code", code, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}

	r.logger.Infow("UpdateStatus completed", "project_code", code, "status", st)
	return nil
}

// Delete removes a project.
func (r *repository) Delete(ctx context.Context, code string) error {
	r.logger.Debugw("Delete called", "project_code", code)

	result := r.db.WithContext(ctx).
		Where("project_code = ?", code).
		Delete(&model.Project{})

	if result.Error != nil {
		r.logger.Errorw("Delete database error", "project_code", code, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrProjectNotFound
	}

	r.logger.Infow("Delete completed", "project_code", code)
	return nil
}

// CountUnfinishedByManager counts projects of userName not yet complete.
func (r *repository) CountUnfinishedByManager(ctx context.Context, userName string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("manager_user_name = ? AND project_status <> ?", userName, status.Complete).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("CountUnfinishedByManager database error", "manager", userName, "error", err)
		return 0, err
	}
	return count, nil
}
