package model

import (
	"time"

	"github.com/festy23/ticketing/internal/status"
)

// TaskDTO is the wire form of a task. AssignedDate uses the YYYY-MM-DD layout
// and is set by the server.
type TaskDTO struct {
	ID               int64         `json:"id,omitempty"`
	ProjectCode      string        `json:"projectCode"`
	AssignedEmployee string        `json:"assignedEmployee"`
	TaskSubject      string        `json:"taskSubject"`
	TaskDetail       string        `json:"taskDetail,omitempty"`
	TaskStatus       status.Status `json:"taskStatus"`
	AssignedDate     string        `json:"assignedDate,omitempty"`
}

// ToDTO converts a task to its wire form.
func ToDTO(t *Task) TaskDTO {
	dto := TaskDTO{
		ID:               t.ID,
		ProjectCode:      t.ProjectCode,
		AssignedEmployee: t.AssignedEmployee,
		TaskSubject:      t.TaskSubject,
		TaskDetail:       t.TaskDetail,
		TaskStatus:       t.TaskStatus,
	}
	if !t.AssignedDate.IsZero() {
		dto.AssignedDate = t.AssignedDate.Format(time.DateOnly)
	}
	return dto
}

// ToDTOs converts a slice of tasks, never returning nil.
func ToDTOs(tasks []Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for i := range tasks {
		dtos = append(dtos, ToDTO(&tasks[i]))
	}
	return dtos
}

// StatusCounts is the task breakdown of one project.
type StatusCounts struct {
	Complete   int64
	Unfinished int64
}
