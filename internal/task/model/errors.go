package model

import "github.com/festy23/ticketing/internal/apperror"

var (
	// ErrTaskNotFound indicates that no task has the given id.
	ErrTaskNotFound = apperror.NotFound("task not found")
	// ErrInvalidTaskID indicates a missing or non-positive task id.
	ErrInvalidTaskID = apperror.Validation("task id must be a positive integer")
	// ErrInvalidSubject indicates an empty task subject.
	ErrInvalidSubject = apperror.Validation("taskSubject is required")
	// ErrInvalidStatus indicates an unknown task status.
	ErrInvalidStatus = apperror.Validation("taskStatus must be one of Open, In Progress, Complete")
	// ErrInvalidProject indicates the referenced project does not exist.
	ErrInvalidProject = apperror.Validation("projectCode must reference an existing project")
	// ErrInvalidEmployee indicates the assignee is unknown or not an Employee.
	ErrInvalidEmployee = apperror.Validation("assignedEmployee must be an existing user with the Employee role")
	// ErrTaskNotOwned indicates an employee touching a task assigned to someone else.
	ErrTaskNotOwned = apperror.Forbidden("task is not assigned to the current user")
)
