package model

import "github.com/festy23/ticketing/internal/apperror"

var (
	// ErrProjectNotFound indicates that no project has the given code.
	ErrProjectNotFound = apperror.NotFound("project not found")
	// ErrProjectAlreadyExists indicates a project code collision.
	ErrProjectAlreadyExists = apperror.Validation("project already exists")
	// ErrInvalidProjectCode indicates an empty project code.
	ErrInvalidProjectCode = apperror.Validation("projectCode is required")
	// ErrInvalidStatus indicates an unknown project status.
	ErrInvalidStatus = apperror.Validation("projectStatus must be one of Open, In Progress, Complete")
	// ErrInvalidDate indicates a date not in YYYY-MM-DD form.
	ErrInvalidDate = apperror.Validation("dates must use the YYYY-MM-DD format")
	// ErrInvalidDateRange indicates an end date before the start date.
	ErrInvalidDateRange = apperror.Validation("endDate must not be before startDate")
	// ErrInvalidManager indicates the assigned manager is unknown or not a Manager.
	ErrInvalidManager = apperror.Validation("assignedManager must be an existing user with the Manager role")
)
