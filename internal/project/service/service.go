// Package service provides business logic layer for project module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/ticketing/internal/auth"
	"github.com/festy23/ticketing/internal/project/model"
	"github.com/festy23/ticketing/internal/project/repository"
	"github.com/festy23/ticketing/internal/status"
	taskRepository "github.com/festy23/ticketing/internal/task/repository"
	userModel "github.com/festy23/ticketing/internal/user/model"
)

// UserLookup resolves active users by username.
type UserLookup interface {
	GetByUserName(ctx context.Context, userName string) (*userModel.User, error)
}

// Service defines the interface for project business logic operations.
type Service interface {
	// List returns all projects.
	List(ctx context.Context) ([]model.ProjectDTO, error)

	// Get returns a project by code.
	Get(ctx context.Context, code string) (*model.ProjectDTO, error)

	// Create stores a new project; an empty status means Open.
	Create(ctx context.Context, dto *model.ProjectDTO) error

	// Update changes an existing project.
	Update(ctx context.Context, dto *model.ProjectDTO) error

	// Delete removes a project together with its tasks.
	Delete(ctx context.Context, code string) error

	// ListDetails returns the projects of manager with task counts.
	ListDetails(ctx context.Context, manager string) ([]model.ProjectDTO, error)

	// Complete marks a project and all of its tasks Complete.
	Complete(ctx context.Context, code string) error
}

type service struct {
	repo   repository.Repository
	tasks  taskRepository.Repository
	users  UserLookup
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new project service instance.
func New(
	repo repository.Repository,
	tasks taskRepository.Repository,
	users UserLookup,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		tasks:  tasks,
		users:  users,
		db:     db,
		logger: logger,
	}
}

// List returns all projects.
func (s *service) List(ctx context.Context) ([]model.ProjectDTO, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(projects), nil
}

// Get returns a project by code.
func (s *service) Get(ctx context.Context, code string) (*model.ProjectDTO, error) {
	if code == "" {
		return nil, model.ErrInvalidProjectCode
	}

	project, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	dto := model.ToDTO(project)
	return &dto, nil
}

// Create stores a new project; an empty status means Open.
func (s *service) Create(ctx context.Context, dto *model.ProjectDTO) error {
	s.logger.Debugw("Create called", "project_code", dto.ProjectCode, "manager", dto.AssignedManager)

	project, err := s.build(ctx, dto, "")
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return err
	}

	s.logger.Infow("Create completed", "project_code", project.ProjectCode, "status", project.ProjectStatus)
	return nil
}

// Update changes an existing project. An empty status or manager keeps
// the current value.
func (s *service) Update(ctx context.Context, dto *model.ProjectDTO) error {
	s.logger.Debugw("Update called", "project_code", dto.ProjectCode)

	if dto.ProjectCode == "" {
		return model.ErrInvalidProjectCode
	}
	current, err := s.repo.GetByCode(ctx, dto.ProjectCode)
	if err != nil {
		return err
	}

	merged := *dto
	if merged.ProjectStatus == "" {
		merged.ProjectStatus = current.ProjectStatus
	}
	if merged.AssignedManager == "" {
		merged.AssignedManager = current.ManagerUserName
	}

	project, err := s.build(ctx, &merged, current.ManagerUserName)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, project)
}

// Delete removes a project together with its tasks.
func (s *service) Delete(ctx context.Context, code string) error {
	s.logger.Debugw("Delete called", "project_code", code)

	if code == "" {
		return model.ErrInvalidProjectCode
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTasks := taskRepository.New(tx, s.logger)

		if _, err := txRepo.GetByCode(ctx, code); err != nil {
			return err
		}
		removed, err := txTasks.DeleteByProject(ctx, code)
		if err != nil {
			return err
		}
		if err := txRepo.Delete(ctx, code); err != nil {
			return err
		}

		s.logger.Infow("Delete completed", "project_code", code, "tasks_removed", removed)
		return nil
	})
}

// ListDetails returns the projects of manager with task counts.
func (s *service) ListDetails(ctx context.Context, manager string) ([]model.ProjectDTO, error) {
	projects, err := s.repo.ListByManager(ctx, manager)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.ProjectDTO, 0, len(projects))
	for i := range projects {
		counts, err := s.tasks.CountByProject(ctx, projects[i].ProjectCode)
		if err != nil {
			return nil, err
		}
		dto := model.ToDTO(&projects[i])
		dto.CompleteTaskCounts = &counts.Complete
		dto.UnfinishedTaskCounts = &counts.Unfinished
		dtos = append(dtos, dto)
	}

	s.logger.Debugw("ListDetails completed", "manager", manager, "count", len(dtos))
	return dtos, nil
}

// Complete marks a project and all of its tasks Complete.
func (s *service) Complete(ctx context.Context, code string) error {
	s.logger.Debugw("Complete called", "project_code", code)

	if code == "" {
		return model.ErrInvalidProjectCode
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)
		txTasks := taskRepository.New(tx, s.logger)

		if err := txRepo.UpdateStatus(ctx, code, status.Complete); err != nil {
			return err
		}
		completed, err := txTasks.UpdateStatusByProject(ctx, code, status.Complete)
		if err != nil {
			return err
		}

		s.logger.Infow("Complete completed", "project_code", code, "tasks_completed", completed)
		return nil
	})
}

// build validates dto and converts it to an entity. The manager is looked up
// unless it equals knownManager.
func (s *service) build(ctx context.Context, dto *model.ProjectDTO, knownManager string) (*model.Project, error) {
	if dto.ProjectCode == "" {
		return nil, model.ErrInvalidProjectCode
	}

	st := dto.ProjectStatus.OrDefault()
	if !st.Valid() {
		return nil, model.ErrInvalidStatus
	}

	start, end, err := dto.ParseDates()
	if err != nil {
		return nil, err
	}

	if dto.AssignedManager != "" && dto.AssignedManager != knownManager {
		if err := s.checkManager(ctx, dto.AssignedManager); err != nil {
			return nil, err
		}
	}

	return &model.Project{
		ProjectCode:     dto.ProjectCode,
		ProjectName:     dto.ProjectName,
		ManagerUserName: dto.AssignedManager,
		StartDate:       start,
		EndDate:         end,
		ProjectDetail:   dto.ProjectDetail,
		ProjectStatus:   st,
	}, nil
}

func (s *service) checkManager(ctx context.Context, userName string) error {
	user, err := s.users.GetByUserName(ctx, userName)
	if errors.Is(err, userModel.ErrUserNotFound) {
		return model.ErrInvalidManager
	}
	if err != nil {
		return err
	}
	if user.Role != auth.RoleManager {
		return model.ErrInvalidManager
	}
	return nil
}

func toDTOs(projects []model.Project) []model.ProjectDTO {
	dtos := make([]model.ProjectDTO, 0, len(projects))
	for i := range projects {
		dtos = append(dtos, model.ToDTO(&projects[i]))
	}
	return dtos
}
