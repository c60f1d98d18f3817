package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectOnHold, ProjectCompleted, ProjectArchived:
		return true
	}
	return false
}

// Project groups tasks under a single deliverable.
type Project struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	Priority    Priority
	DueDate     string // YYYY-MM-DD, empty when unset
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectInput carries caller-supplied fields for a new project.
type ProjectInput struct {
	Name        string
	Description string
	Status      ProjectStatus
	Priority    Priority
	DueDate     string
}

// ProjectPatch is a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
	Priority    *Priority
	DueDate     *string
}
