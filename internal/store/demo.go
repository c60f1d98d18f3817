package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"taskboard/internal/model"
)

// demoIDStart keeps synthetic ids clear of the seed dataset's p*/t*/c*/a* ids.
const demoIDStart = 100

// Demo is the in-memory backend used in demo mode. It mirrors the remote
// adapter's contract without any network calls and can be reset to its seed
// state at any time.
type Demo struct {
	mu         sync.Mutex
	nextID     int
	projects   []model.Project
	tasks      []model.Task
	comments   []model.Comment
	activities []model.ActivityLog

	now func() time.Time
}

// NewDemo returns a demo store populated with the seed dataset.
func NewDemo() *Demo {
	d := &Demo{now: time.Now}
	d.Reset()
	return d
}

// Reset reinitializes all collections and the id counter to the seed state.
// Calling it repeatedly is idempotent.
func (d *Demo) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID = demoIDStart
	d.projects, d.tasks, d.comments, d.activities = seedData(d.now())
}

// Clear empties all collections without reseeding. Used when leaving demo
// mode so stale demo rows never leak into an authenticated session.
func (d *Demo) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID = demoIDStart
	d.projects, d.tasks, d.comments, d.activities = nil, nil, nil, nil
}

func (d *Demo) genID() string {
	id := fmt.Sprintf("demo-%d", d.nextID)
	d.nextID++
	return id
}

func (d *Demo) ListProjects(ctx context.Context) ([]model.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Project(nil), d.projects...), nil
}

func (d *Demo) CreateProject(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	if in.Name == "" {
		return model.Project{}, &ValidationError{Field: "name"}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	p := model.Project{
		ID:          d.genID(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	d.projects = append([]model.Project{p}, d.projects...)
	return p, nil
}

func (d *Demo) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.projects {
		if d.projects[i].ID != id {
			continue
		}
		p := &d.projects[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Priority != nil {
			p.Priority = *patch.Priority
		}
		if patch.DueDate != nil {
			p.DueDate = *patch.DueDate
		}
		p.UpdatedAt = d.now()
		return *p, nil
	}
	return model.Project{}, fmt.Errorf("update project %s: %w", id, ErrNotFound)
}

func (d *Demo) DeleteProject(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	found := false
	kept := d.projects[:0]
	for _, p := range d.projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	d.projects = kept
	if !found {
		return fmt.Errorf("delete project %s: %w", id, ErrNotFound)
	}
	// Cascade: drop the project's tasks, then those tasks' comments.
	doomed := make(map[string]bool)
	tasks := d.tasks[:0]
	for _, t := range d.tasks {
		if t.ProjectID == id {
			doomed[t.ID] = true
			continue
		}
		tasks = append(tasks, t)
	}
	d.tasks = tasks
	comments := d.comments[:0]
	for _, c := range d.comments {
		if doomed[c.TaskID] {
			continue
		}
		comments = append(comments, c)
	}
	d.comments = comments
	return nil
}

func (d *Demo) ListTasks(ctx context.Context) ([]model.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Task(nil), d.tasks...), nil
}

func (d *Demo) CreateTask(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if in.Title == "" {
		return model.Task{}, &ValidationError{Field: "title"}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	t := model.Task{
		ID:          d.genID(),
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		Label:       in.Label,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	d.tasks = append([]model.Task{t}, d.tasks...)
	return t, nil
}

func (d *Demo) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.tasks {
		if d.tasks[i].ID != id {
			continue
		}
		t := &d.tasks[i]
		if patch.ProjectID != nil {
			t.ProjectID = *patch.ProjectID
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Label != nil {
			t.Label = *patch.Label
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		t.UpdatedAt = d.now()
		return *t, nil
	}
	return model.Task{}, fmt.Errorf("update task %s: %w", id, ErrNotFound)
}

func (d *Demo) DeleteTask(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	found := false
	kept := d.tasks[:0]
	for _, t := range d.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	d.tasks = kept
	if !found {
		return fmt.Errorf("delete task %s: %w", id, ErrNotFound)
	}
	comments := d.comments[:0]
	for _, c := range d.comments {
		if c.TaskID == id {
			continue
		}
		comments = append(comments, c)
	}
	d.comments = comments
	return nil
}

func (d *Demo) ListComments(ctx context.Context) ([]model.Comment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Comment(nil), d.comments...), nil
}

func (d *Demo) CreateComment(ctx context.Context, taskID, content string) (model.Comment, error) {
	if content == "" {
		return model.Comment{}, &ValidationError{Field: "content"}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c := model.Comment{
		ID:        d.genID(),
		TaskID:    taskID,
		Content:   content,
		CreatedAt: d.now(),
	}
	d.comments = append(d.comments, c)
	return c, nil
}

func (d *Demo) ListActivities(ctx context.Context) ([]model.ActivityLog, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.activities
	if len(out) > ActivityLimit {
		out = out[:ActivityLimit]
	}
	return append([]model.ActivityLog(nil), out...), nil
}

func (d *Demo) RecordActivity(ctx context.Context, draft model.ActivityDraft) (model.ActivityLog, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	entry := model.ActivityLog{
		ID:          d.genID(),
		EntityType:  draft.EntityType,
		EntityID:    draft.EntityID,
		Action:      draft.Action,
		Description: draft.Description,
		CreatedAt:   d.now(),
	}
	d.activities = append([]model.ActivityLog{entry}, d.activities...)
	return entry, nil
}
