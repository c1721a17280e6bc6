// Package status provides the workflow status shared by projects and tasks.
package status

// Status is the lifecycle state of a project or task.
type Status string

const (
	// Open is the initial state.
	Open Status = "Open"
	// InProgress means work has started.
	InProgress Status = "In Progress"
	// Complete is the terminal state.
	Complete Status = "Complete"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case Open, InProgress, Complete:
		return true
	}
	return false
}

// IsComplete reports whether s is the terminal state.
func (s Status) IsComplete() bool {
	return s == Complete
}

// OrDefault returns s, or Open when s is empty.
func (s Status) OrDefault() Status {
	if s == "" {
		return Open
	}
	return s
}
