// Package app is the unified data facade: the single entry point the
// presentation layer uses to read and mutate projects, tasks, comments and
// activity. It owns the in-memory read-model collections, routes each
// mutation to the demo or remote backend based on session mode, and merges
// authoritative results back in.
//
// Concurrent updates to the same entity are not reconciled: the last
// response to land wins. That is a documented limitation, not an oversight.
package app

import (
	"context"
	"fmt"
	"log"
	"sync"

	"taskboard/internal/activity"
	"taskboard/internal/model"
	"taskboard/internal/session"
	"taskboard/internal/store"
)

// RemoteBinder builds a remote backend scoped to an owner identity.
type RemoteBinder func(owner string) store.Backend

// App holds the read models and current session state.
type App struct {
	session *session.Controller
	demo    *store.Demo
	bind    RemoteBinder

	mu         sync.Mutex
	remote     store.Backend // bound to the signed-in owner, nil otherwise
	projects   []model.Project
	tasks      []model.Task
	comments   []model.Comment
	activities []model.ActivityLog
}

// New wires the facade. The remote binder may be nil for demo-only use.
func New(provider session.IdentityProvider, demo *store.Demo, bind RemoteBinder) *App {
	a := &App{
		session: session.NewController(provider),
		demo:    demo,
		bind:    bind,
	}
	provider.OnChange(func(id *session.Identity) {
		if err := a.identityChanged(context.Background()); err != nil {
			log.Printf("[warn] identity change: %v", err)
		}
	})
	return a
}

// Start performs the initial identity check and, when a session exists,
// loads the read models from the remote store.
func (a *App) Start(ctx context.Context) error {
	return a.identityChanged(ctx)
}

func (a *App) identityChanged(ctx context.Context) error {
	id, err := a.session.Resolve(ctx)
	if err != nil {
		return err
	}
	if a.session.Mode() == session.ModeDemo {
		return nil
	}
	if id == nil {
		a.mu.Lock()
		a.remote = nil
		a.clearLocked()
		a.mu.Unlock()
		return nil
	}
	if a.bind == nil {
		return fmt.Errorf("no remote backend configured for user %s", id.UserID)
	}
	a.mu.Lock()
	a.remote = a.bind(id.UserID)
	a.mu.Unlock()
	return a.Load(ctx)
}

// backend picks the store servicing the next operation. Demo always wins;
// without a signed-in identity mutations also stay in memory.
func (a *App) backend() store.Backend {
	if a.session.Mode() == session.ModeAuthenticated {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.remote != nil {
			return a.remote
		}
	}
	return a.demo
}

// Load bulk-lists all four entity types and replaces the read models
// wholesale. Nothing is applied if any list fails.
func (a *App) Load(ctx context.Context) error {
	b := a.backend()
	projects, err := b.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	tasks, err := b.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	comments, err := b.ListComments(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	activities, err := b.ListActivities(ctx)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	a.mu.Lock()
	a.projects = projects
	a.tasks = tasks
	a.comments = comments
	a.activities = activities
	a.mu.Unlock()
	return nil
}

// record stores an activity entry and prepends it to the read model. A
// failure here never rolls back the mutation that triggered it.
func (a *App) record(ctx context.Context, b store.Backend, draft model.ActivityDraft) {
	entry, err := b.RecordActivity(ctx, draft)
	if err != nil {
		log.Printf("[warn] record activity: %v", err)
		return
	}
	a.mu.Lock()
	a.activities = append([]model.ActivityLog{entry}, a.activities...)
	a.mu.Unlock()
}

// AddProject creates a project and logs the creation.
func (a *App) AddProject(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	if !in.Status.Valid() {
		in.Status = model.ProjectActive
	}
	if !in.Priority.Valid() {
		in.Priority = model.PriorityMedium
	}
	b := a.backend()
	p, err := b.CreateProject(ctx, in)
	if err != nil {
		return model.Project{}, err
	}
	a.mu.Lock()
	a.projects = append([]model.Project{p}, a.projects...)
	a.mu.Unlock()
	a.record(ctx, b, activity.ProjectCreated(p))
	return p, nil
}

// UpdateProject applies a partial update and merges the authoritative
// result. If the project vanished from the read model while the call was in
// flight the response is discarded.
func (a *App) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (model.Project, error) {
	p, err := a.backend().UpdateProject(ctx, id, patch)
	if err != nil {
		return model.Project{}, err
	}
	a.mu.Lock()
	for i := range a.projects {
		if a.projects[i].ID == id {
			a.projects[i] = p
			break
		}
	}
	a.mu.Unlock()
	return p, nil
}

// DeleteProject removes the project and, by cascade, its tasks and their
// comments from both the backend and the read model.
func (a *App) DeleteProject(ctx context.Context, id string) error {
	if err := a.backend().DeleteProject(ctx, id); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.projects[:0]
	for _, p := range a.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	a.projects = kept
	doomed := make(map[string]bool)
	tasks := a.tasks[:0]
	for _, t := range a.tasks {
		if t.ProjectID == id {
			doomed[t.ID] = true
			continue
		}
		tasks = append(tasks, t)
	}
	a.tasks = tasks
	comments := a.comments[:0]
	for _, c := range a.comments {
		if !doomed[c.TaskID] {
			comments = append(comments, c)
		}
	}
	a.comments = comments
	return nil
}

// AddTask creates a task and logs the creation.
func (a *App) AddTask(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if !in.Status.Valid() {
		in.Status = model.TaskTodo
	}
	if !in.Priority.Valid() {
		in.Priority = model.PriorityMedium
	}
	if !in.Label.Valid() {
		in.Label = model.LabelFeature
	}
	b := a.backend()
	t, err := b.CreateTask(ctx, in)
	if err != nil {
		return model.Task{}, err
	}
	a.mu.Lock()
	a.tasks = append([]model.Task{t}, a.tasks...)
	a.mu.Unlock()
	a.record(ctx, b, activity.TaskCreated(t))
	return t, nil
}

// UpdateTask applies a partial update, merges the authoritative result and
// logs a status change when the patch moved the task to a new column.
func (a *App) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	var old *model.Task
	a.mu.Lock()
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			prev := a.tasks[i]
			old = &prev
			break
		}
	}
	a.mu.Unlock()

	b := a.backend()
	t, err := b.UpdateTask(ctx, id, patch)
	if err != nil {
		return model.Task{}, err
	}

	a.mu.Lock()
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			a.tasks[i] = t
			break
		}
	}
	a.mu.Unlock()

	if patch.Status != nil && old != nil {
		if draft, ok := activity.TaskStatusChanged(*old, *patch.Status); ok {
			a.record(ctx, b, draft)
		}
	}
	return t, nil
}

// DeleteTask removes the task and its comments from both the backend and
// the read model.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	if err := a.backend().DeleteTask(ctx, id); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.tasks[:0]
	for _, t := range a.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	a.tasks = kept
	comments := a.comments[:0]
	for _, c := range a.comments {
		if c.TaskID != id {
			comments = append(comments, c)
		}
	}
	a.comments = comments
	return nil
}

// AddComment attaches an immutable comment to a task. Comments keep
// oldest-first order, so the new one is appended.
func (a *App) AddComment(ctx context.Context, taskID, content string) (model.Comment, error) {
	c, err := a.backend().CreateComment(ctx, taskID, content)
	if err != nil {
		return model.Comment{}, err
	}
	a.mu.Lock()
	a.comments = append(a.comments, c)
	a.mu.Unlock()
	return c, nil
}

// EnterDemo switches to the seeded in-memory backend. Any signed-in
// identity is shadowed, not lost.
func (a *App) EnterDemo(ctx context.Context) error {
	a.session.EnterDemo()
	a.demo.Reset()
	return a.Load(ctx)
}

// ExitDemo clears demo state and, when an identity was shadowed, reloads
// the read models from the remote store.
func (a *App) ExitDemo(ctx context.Context) error {
	if a.session.Mode() != session.ModeDemo {
		return nil
	}
	id := a.session.ExitDemo()
	a.mu.Lock()
	a.clearLocked()
	a.mu.Unlock()
	a.demo.Clear()
	if id == nil {
		return nil
	}
	if a.bind == nil {
		return fmt.Errorf("no remote backend configured for user %s", id.UserID)
	}
	a.mu.Lock()
	a.remote = a.bind(id.UserID)
	a.mu.Unlock()
	return a.Load(ctx)
}

// ResetDemo reinitializes the demo dataset; in demo mode the read models
// are refreshed to match.
func (a *App) ResetDemo(ctx context.Context) error {
	a.demo.Reset()
	if a.session.Mode() != session.ModeDemo {
		return nil
	}
	return a.Load(ctx)
}

// SignOut ends the session and drops all read-model state.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.session.SignOut(ctx); err != nil {
		return err
	}
	a.mu.Lock()
	a.remote = nil
	a.clearLocked()
	a.mu.Unlock()
	a.demo.Clear()
	return nil
}

func (a *App) clearLocked() {
	a.projects = nil
	a.tasks = nil
	a.comments = nil
	a.activities = nil
}

// Mode exposes the session state.
func (a *App) Mode() session.Mode { return a.session.Mode() }

// Identity exposes the current (possibly shadowed) identity.
func (a *App) Identity() *session.Identity { return a.session.Identity() }

// AuthLoading reports whether the first identity check is still pending.
func (a *App) AuthLoading() bool { return a.session.AuthLoading() }

// Projects returns a copy of the project read model, newest first.
func (a *App) Projects() []model.Project {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Project(nil), a.projects...)
}

// Tasks returns a copy of the task read model, newest first.
func (a *App) Tasks() []model.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Task(nil), a.tasks...)
}

// Comments returns a copy of the comment read model, oldest first.
func (a *App) Comments() []model.Comment {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.Comment(nil), a.comments...)
}

// Activities returns a copy of the activity read model, newest first.
func (a *App) Activities() []model.ActivityLog {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]model.ActivityLog(nil), a.activities...)
}
