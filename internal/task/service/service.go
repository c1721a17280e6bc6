// Package service provides business logic layer for task module.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/ticketing/internal/auth"
	projectModel "github.com/festy23/ticketing/internal/project/model"
	"github.com/festy23/ticketing/internal/status"
	"github.com/festy23/ticketing/internal/task/model"
	"github.com/festy23/ticketing/internal/task/repository"
	userModel "github.com/festy23/ticketing/internal/user/model"
)

// ProjectLookup resolves projects by code.
type ProjectLookup interface {
	GetByCode(ctx context.Context, code string) (*projectModel.Project, error)
}

// UserLookup resolves active users by username.
type UserLookup interface {
	GetByUserName(ctx context.Context, userName string) (*userModel.User, error)
}

// Service defines the interface for task business logic operations.
type Service interface {
	// List returns all tasks.
	List(ctx context.Context) ([]model.TaskDTO, error)

	// Get returns a task by id.
	Get(ctx context.Context, id int64) (*model.TaskDTO, error)

	// Create stores a new Open task assigned today.
	Create(ctx context.Context, dto *model.TaskDTO) error

	// Update changes an existing task.
	Update(ctx context.Context, dto *model.TaskDTO) error

	// Delete removes a task.
	Delete(ctx context.Context, id int64) error

	// ListPending returns the tasks of employee that are not Complete.
	ListPending(ctx context.Context, employee string) ([]model.TaskDTO, error)

	// ListArchive returns the Complete tasks of employee.
	ListArchive(ctx context.Context, employee string) ([]model.TaskDTO, error)

	// UpdateStatus changes the status of a task assigned to employee.
	UpdateStatus(ctx context.Context, employee string, dto *model.TaskDTO) error
}

type service struct {
	repo     repository.Repository
	projects ProjectLookup
	users    UserLookup
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// New creates a new task service instance.
func New(
	repo repository.Repository,
	projects ProjectLookup,
	users UserLookup,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:     repo,
		projects: projects,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// List returns all tasks.
func (s *service) List(ctx context.Context) ([]model.TaskDTO, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.ToDTOs(tasks), nil
}

// Get returns a task by id.
func (s *service) Get(ctx context.Context, id int64) (*model.TaskDTO, error) {
	if id <= 0 {
		return nil, model.ErrInvalidTaskID
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := model.ToDTO(task)
	return &dto, nil
}

// Create stores a new Open task assigned today. Client supplied id, status
// and date are ignored.
func (s *service) Create(ctx context.Context, dto *model.TaskDTO) error {
	s.logger.Debugw("Create called", "project_code", dto.ProjectCode, "employee", dto.AssignedEmployee)

	if err := s.validate(ctx, dto, nil); err != nil {
		return err
	}

	task := &model.Task{
		ProjectCode:      dto.ProjectCode,
		AssignedEmployee: dto.AssignedEmployee,
		TaskSubject:      dto.TaskSubject,
		TaskDetail:       dto.TaskDetail,
		TaskStatus:       status.Open,
		AssignedDate:     s.today(),
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return err
	}

	s.logger.Infow("Create completed", "task_id", task.ID, "project_code", task.ProjectCode)
	return nil
}

// Update changes an existing task. Empty fields keep their current value.
func (s *service) Update(ctx context.Context, dto *model.TaskDTO) error {
	s.logger.Debugw("Update called", "task_id", dto.ID)

	if dto.ID <= 0 {
		return model.ErrInvalidTaskID
	}
	current, err := s.repo.GetByID(ctx, dto.ID)
	if err != nil {
		return err
	}

	merged := *dto
	if merged.ProjectCode == "" {
		merged.ProjectCode = current.ProjectCode
	}
	if merged.AssignedEmployee == "" {
		merged.AssignedEmployee = current.AssignedEmployee
	}
	if merged.TaskSubject == "" {
		merged.TaskSubject = current.TaskSubject
	}
	if merged.TaskDetail == "" {
		merged.TaskDetail = current.TaskDetail
	}
	if merged.TaskStatus == "" {
		merged.TaskStatus = current.TaskStatus
	}
	if !merged.TaskStatus.Valid() {
		return model.ErrInvalidStatus
	}
	if err := s.validate(ctx, &merged, current); err != nil {
		return err
	}

	return s.repo.Update(ctx, &model.Task{
		ID:               current.ID,
		ProjectCode:      merged.ProjectCode,
		AssignedEmployee: merged.AssignedEmployee,
		TaskSubject:      merged.TaskSubject,
		TaskDetail:       merged.TaskDetail,
		TaskStatus:       merged.TaskStatus,
	})
}

// Delete removes a task.
func (s *service) Delete(ctx context.Context, id int64) error {
	s.logger.Debugw("Delete called", "task_id", id)

	if id <= 0 {
		return model.ErrInvalidTaskID
	}
	return s.repo.Delete(ctx, id)
}

// ListPending returns the tasks of employee that are not Complete.
func (s *service) ListPending(ctx context.Context, employee string) ([]model.TaskDTO, error) {
	tasks, err := s.repo.ListByEmployeeStatusNot(ctx, employee, status.Complete)
	if err != nil {
		return nil, err
	}
	return model.ToDTOs(tasks), nil
}

// ListArchive returns the Complete tasks of employee.
func (s *service) ListArchive(ctx context.Context, employee string) ([]model.TaskDTO, error) {
	tasks, err := s.repo.ListByEmployeeStatus(ctx, employee, status.Complete)
	if err != nil {
		return nil, err
	}
	return model.ToDTOs(tasks), nil
}

// UpdateStatus changes the status of a task assigned to employee. Other
// fields of dto are ignored.
func (s *service) UpdateStatus(ctx context.Context, employee string, dto *model.TaskDTO) error {
	s.logger.Debugw("UpdateStatus called", "task_id", dto.ID, "employee", employee, "status", dto.TaskStatus)

	if dto.ID <= 0 {
		return model.ErrInvalidTaskID
	}
	if !dto.TaskStatus.Valid() {
		return model.ErrInvalidStatus
	}

	task, err := s.repo.GetByID(ctx, dto.ID)
	if err != nil {
		return err
	}
	if task.AssignedEmployee != employee {
		s.logger.Warnw("UpdateStatus rejected", "task_id", dto.ID, "employee", employee, "assignee", task.AssignedEmployee)
		return model.ErrTaskNotOwned
	}

	return s.repo.UpdateStatus(ctx, task.ID, dto.TaskStatus)
}

// validate checks the subject and the project and employee references.
// References equal to those of current are not looked up again.
func (s *service) validate(ctx context.Context, dto *model.TaskDTO, current *model.Task) error {
	if dto.TaskSubject == "" {
		return model.ErrInvalidSubject
	}
	if current == nil || dto.ProjectCode != current.ProjectCode {
		if err := s.checkProject(ctx, dto.ProjectCode); err != nil {
			return err
		}
	}
	if current == nil || dto.AssignedEmployee != current.AssignedEmployee {
		if err := s.checkEmployee(ctx, dto.AssignedEmployee); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) checkProject(ctx context.Context, code string) error {
	if code == "" {
		return model.ErrInvalidProject
	}
	_, err := s.projects.GetByCode(ctx, code)
	if errors.Is(err, projectModel.ErrProjectNotFound) {
		return model.ErrInvalidProject
	}
	return err
}

func (s *service) checkEmployee(ctx context.Context, userName string) error {
	if userName == "" {
		return model.ErrInvalidEmployee
	}
	user, err := s.users.GetByUserName(ctx, userName)
	if errors.Is(err, userModel.ErrUserNotFound) {
		return model.ErrInvalidEmployee
	}
	if err != nil {
		return err
	}
	if user.Role != auth.RoleEmployee {
		return model.ErrInvalidEmployee
	}
	return nil
}

func (s *service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
