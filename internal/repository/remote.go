package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

// Remote is the relational storage backend, bound to the authenticated
// owner whose user_id is stamped on every inserted row. It satisfies
// store.Backend.
type Remote struct {
	projects *ProjectRepository
	tasks    *TaskRepository
	comments *CommentRepository
	activity *ActivityRepository
	owner    string
}

// NewRemote builds an unbound remote backend over db. Call WithOwner before
// issuing any operation.
func NewRemote(db *gorm.DB) *Remote {
	return &Remote{
		projects: NewProjectRepository(db),
		tasks:    NewTaskRepository(db),
		comments: NewCommentRepository(db),
		activity: NewActivityRepository(db),
	}
}

// WithOwner returns a copy bound to the given identity.
func (r *Remote) WithOwner(owner string) *Remote {
	bound := *r
	bound.owner = owner
	return &bound
}

var _ store.Backend = (*Remote)(nil)

func (r *Remote) ListProjects(ctx context.Context) ([]model.Project, error) {
	return r.projects.List(ctx, r.owner)
}

func (r *Remote) CreateProject(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	if in.Name == "" {
		return model.Project{}, &store.ValidationError{Field: "name"}
	}
	return r.projects.Create(ctx, r.owner, in)
}

func (r *Remote) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error) {
	return r.projects.Update(ctx, r.owner, id, patch)
}

// DeleteProject removes the project's tasks and their comments before the
// project itself; the storage layer has no cascading deletes of its own.
// The steps are not transactional: if a later step fails the error names
// what was already removed so the caller can see the inconsistent state.
func (r *Remote) DeleteProject(ctx context.Context, id string) error {
	taskIDs, err := r.tasks.IDsByProject(ctx, r.owner, id)
	if err != nil {
		return err
	}
	if err := r.comments.DeleteByTasks(ctx, r.owner, taskIDs); err != nil {
		return err
	}
	if err := r.tasks.DeleteByProject(ctx, r.owner, id); err != nil {
		return fmt.Errorf("project %s left with comments removed: %w", id, err)
	}
	if err := r.projects.Delete(ctx, r.owner, id); err != nil {
		return fmt.Errorf("project %s left orphaned after removing %d tasks: %w", id, len(taskIDs), err)
	}
	return nil
}

func (r *Remote) ListTasks(ctx context.Context) ([]model.Task, error) {
	return r.tasks.List(ctx, r.owner)
}

func (r *Remote) CreateTask(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if in.Title == "" {
		return model.Task{}, &store.ValidationError{Field: "title"}
	}
	return r.tasks.Create(ctx, r.owner, in)
}

func (r *Remote) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	return r.tasks.Update(ctx, r.owner, id, patch)
}

// DeleteTask removes the task's comments first, then the task. Same
// non-transactional caveat as DeleteProject.
func (r *Remote) DeleteTask(ctx context.Context, id string) error {
	if err := r.comments.DeleteByTask(ctx, r.owner, id); err != nil {
		return err
	}
	if err := r.tasks.Delete(ctx, r.owner, id); err != nil {
		return fmt.Errorf("task %s left without comments: %w", id, err)
	}
	return nil
}

func (r *Remote) ListComments(ctx context.Context) ([]model.Comment, error) {
	return r.comments.List(ctx, r.owner)
}

func (r *Remote) CreateComment(ctx context.Context, taskID, content string) (model.Comment, error) {
	if content == "" {
		return model.Comment{}, &store.ValidationError{Field: "content"}
	}
	return r.comments.Create(ctx, r.owner, taskID, content)
}

func (r *Remote) ListActivities(ctx context.Context) ([]model.ActivityLog, error) {
	return r.activity.List(ctx, r.owner)
}

func (r *Remote) RecordActivity(ctx context.Context, draft model.ActivityDraft) (model.ActivityLog, error) {
	return r.activity.Create(ctx, r.owner, draft)
}
