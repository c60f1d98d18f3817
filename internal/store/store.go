// Package store defines the storage backend contract shared by the in-memory
// demo store and the remote relational adapter, so the facade can switch
// fulfillment strategy without scattering mode checks through every mutation.
package store

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"
)

// ActivityLimit caps how many activity entries a bulk list returns.
const ActivityLimit = 50

// ErrNotFound is returned when a mutation target no longer exists.
var ErrNotFound = errors.New("not found")

// ValidationError reports a required field the caller left empty. The facade
// treats these as caller mistakes and applies no state change.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Backend is the four-entity CRUD contract. Both implementations honor the
// same ordering rules: projects and tasks list newest-first, comments
// oldest-first, activities newest-first capped at ActivityLimit.
//
// Create and Update return the authoritative stored representation; callers
// must replace any optimistic local value with it. DeleteProject cascades to
// the project's tasks and their comments; DeleteTask cascades to the task's
// comments. Neither cascade is transactional: a partial failure is reported
// as an error naming the orphaned state.
type Backend interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, in model.ProjectInput) (model.Project, error)
	UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error

	ListTasks(ctx context.Context) ([]model.Task, error)
	CreateTask(ctx context.Context, in model.TaskInput) (model.Task, error)
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	ListComments(ctx context.Context) ([]model.Comment, error)
	CreateComment(ctx context.Context, taskID, content string) (model.Comment, error)

	ListActivities(ctx context.Context) ([]model.ActivityLog, error)
	RecordActivity(ctx context.Context, draft model.ActivityDraft) (model.ActivityLog, error)
}
