package model

import (
	"time"

	"github.com/festy23/ticketing/internal/status"
)

// ProjectDTO is the wire form of a project. Dates use the YYYY-MM-DD layout.
// Task counts are filled only by the manager status listing.
type ProjectDTO struct {
	ProjectCode          string        `json:"projectCode"                    binding:"required"`
	ProjectName          string        `json:"projectName"`
	AssignedManager      string        `json:"assignedManager,omitempty"`
	StartDate            string        `json:"startDate,omitempty"`
	EndDate              string        `json:"endDate,omitempty"`
	ProjectDetail        string        `json:"projectDetail,omitempty"`
	ProjectStatus        status.Status `json:"projectStatus"`
	CompleteTaskCounts   *int64        `json:"completeTaskCounts,omitempty"`
	UnfinishedTaskCounts *int64        `json:"unfinishedTaskCounts,omitempty"`
}

// ToDTO converts a project to its wire form.
func ToDTO(p *Project) ProjectDTO {
	return ProjectDTO{
		ProjectCode:     p.ProjectCode,
		ProjectName:     p.ProjectName,
		AssignedManager: p.ManagerUserName,
		StartDate:       formatDate(p.StartDate),
		EndDate:         formatDate(p.EndDate),
		ProjectDetail:   p.ProjectDetail,
		ProjectStatus:   p.ProjectStatus,
	}
}

// ParseDates validates the DTO dates and their order.
func (d *ProjectDTO) ParseDates() (start, end *time.Time, err error) {
	if start, err = parseDate(d.StartDate); err != nil {
		return nil, nil, err
	}
	if end, err = parseDate(d.EndDate); err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, ErrInvalidDateRange
	}
	return start, end, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}
