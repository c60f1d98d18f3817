package model

import (
	"strings"
	"time"
)

// TaskStatus is the board column a task sits in.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
)

// Valid reports whether s is one of the known task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone:
		return true
	}
	return false
}

// Humanize renders the status for display, e.g. "in-progress" -> "in progress".
func (s TaskStatus) Humanize() string {
	return strings.ReplaceAll(string(s), "-", " ")
}

// TaskLabel categorizes the kind of work a task is.
type TaskLabel string

const (
	LabelFrontend TaskLabel = "frontend"
	LabelBackend  TaskLabel = "backend"
	LabelBug      TaskLabel = "bug"
	LabelUI       TaskLabel = "ui"
	LabelFeature  TaskLabel = "feature"
	LabelDocs     TaskLabel = "docs"
)

// Valid reports whether l is one of the known labels.
func (l TaskLabel) Valid() bool {
	switch l {
	case LabelFrontend, LabelBackend, LabelBug, LabelUI, LabelFeature, LabelDocs:
		return true
	}
	return false
}

// Task is a single item of work belonging to a project.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	Label       TaskLabel
	DueDate     string // YYYY-MM-DD, empty when unset
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskInput carries caller-supplied fields for a new task.
type TaskInput struct {
	ProjectID   string
	Title       string
	Description string
	Status      TaskStatus
	Priority    Priority
	Label       TaskLabel
	DueDate     string
}

// TaskPatch is a partial update; nil fields are left untouched.
type TaskPatch struct {
	ProjectID   *string
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *Priority
	Label       *TaskLabel
	DueDate     *string
}
