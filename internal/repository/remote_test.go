package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

func newTestRemote(t *testing.T) *Remote {
	t.Helper()
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	return NewRemote(db).WithOwner("u1")
}

func TestRemoteCreateAssignsIDAndTimestamps(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	p, err := r.CreateProject(ctx, model.ProjectInput{
		Name: "Alpha", Status: model.ProjectActive, Priority: model.PriorityHigh, DueDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, "2026-09-15", p.DueDate)
}

func TestRemoteBlankDueDateRoundTrip(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	p, err := r.CreateProject(ctx, model.ProjectInput{
		Name: "No deadline", Status: model.ProjectActive, Priority: model.PriorityLow,
	})
	require.NoError(t, err)
	assert.Equal(t, "", p.DueDate)

	projects, err := r.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "", projects[0].DueDate)
}

func TestRemoteUpdatePatchSemantics(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	p, err := r.CreateProject(ctx, model.ProjectInput{
		Name: "Alpha", Description: "keep me", Status: model.ProjectActive, Priority: model.PriorityHigh, DueDate: "2026-09-15",
	})
	require.NoError(t, err)

	status := model.ProjectOnHold
	blank := ""
	updated, err := r.UpdateProject(ctx, p.ID, model.ProjectPatch{Status: &status, DueDate: &blank})
	require.NoError(t, err)

	assert.Equal(t, model.ProjectOnHold, updated.Status)
	assert.Equal(t, "", updated.DueDate, "blank patch clears the date")
	assert.Equal(t, "keep me", updated.Description, "untouched fields survive")
	assert.Equal(t, p.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestRemoteUpdateMissingReturnsNotFound(t *testing.T) {
	r := newTestRemote(t)
	name := "ghost"
	_, err := r.UpdateProject(context.Background(), "missing", model.ProjectPatch{Name: &name})
	assert.True(t, errors.Is(err, store.ErrNotFound))

	status := model.TaskDone
	_, err = r.UpdateTask(context.Background(), "missing", model.TaskPatch{Status: &status})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestRemoteDeleteProjectCascades(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	p, err := r.CreateProject(ctx, model.ProjectInput{Name: "Alpha", Status: model.ProjectActive, Priority: model.PriorityHigh})
	require.NoError(t, err)
	keepP, err := r.CreateProject(ctx, model.ProjectInput{Name: "Beta", Status: model.ProjectActive, Priority: model.PriorityLow})
	require.NoError(t, err)

	task1, err := r.CreateTask(ctx, model.TaskInput{ProjectID: p.ID, Title: "One", Status: model.TaskTodo, Priority: model.PriorityLow, Label: model.LabelFeature})
	require.NoError(t, err)
	_, err = r.CreateTask(ctx, model.TaskInput{ProjectID: p.ID, Title: "Two", Status: model.TaskTodo, Priority: model.PriorityLow, Label: model.LabelBug})
	require.NoError(t, err)
	keepTask, err := r.CreateTask(ctx, model.TaskInput{ProjectID: keepP.ID, Title: "Keep", Status: model.TaskTodo, Priority: model.PriorityLow, Label: model.LabelDocs})
	require.NoError(t, err)

	_, err = r.CreateComment(ctx, task1.ID, "gone with the task")
	require.NoError(t, err)
	_, err = r.CreateComment(ctx, keepTask.ID, "survives")
	require.NoError(t, err)

	require.NoError(t, r.DeleteProject(ctx, p.ID))

	tasks, err := r.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, keepTask.ID, tasks[0].ID)

	comments, err := r.ListComments(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "survives", comments[0].Content)
}

func TestRemoteDeleteTaskCascadesToComments(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	p, err := r.CreateProject(ctx, model.ProjectInput{Name: "Alpha", Status: model.ProjectActive, Priority: model.PriorityHigh})
	require.NoError(t, err)
	task, err := r.CreateTask(ctx, model.TaskInput{ProjectID: p.ID, Title: "One", Status: model.TaskTodo, Priority: model.PriorityLow, Label: model.LabelFeature})
	require.NoError(t, err)
	_, err = r.CreateComment(ctx, task.ID, "doomed")
	require.NoError(t, err)

	require.NoError(t, r.DeleteTask(ctx, task.ID))

	comments, err := r.ListComments(ctx)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestRemoteScopedToOwner(t *testing.T) {
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	base := NewRemote(db)
	alice := base.WithOwner("alice")
	bob := base.WithOwner("bob")
	ctx := context.Background()

	_, err = alice.CreateProject(ctx, model.ProjectInput{Name: "Alice's", Status: model.ProjectActive, Priority: model.PriorityLow})
	require.NoError(t, err)

	mine, err := alice.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := bob.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	// One owner cannot mutate another owner's rows.
	name := "hijack"
	_, err = bob.UpdateProject(ctx, mine[0].ID, model.ProjectPatch{Name: &name})
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestRemoteActivityAppendOnlyList(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	for i := 0; i < store.ActivityLimit+5; i++ {
		_, err := r.RecordActivity(ctx, model.ActivityDraft{
			EntityType:  model.EntityTask,
			EntityID:    "t1",
			Action:      model.ActionStatusChanged,
			Description: "moved",
		})
		require.NoError(t, err)
	}

	entries, err := r.ListActivities(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, store.ActivityLimit)
}

func TestRemoteCreateValidation(t *testing.T) {
	r := newTestRemote(t)
	ctx := context.Background()

	var vErr *store.ValidationError
	_, err := r.CreateProject(ctx, model.ProjectInput{})
	require.ErrorAs(t, err, &vErr)

	_, err = r.CreateTask(ctx, model.TaskInput{ProjectID: "p1"})
	require.ErrorAs(t, err, &vErr)

	_, err = r.CreateComment(ctx, "t1", "")
	require.ErrorAs(t, err, &vErr)
}
