package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
)

func TestProjectCreated(t *testing.T) {
	draft := ProjectCreated(model.Project{ID: "p9", Name: "Launch"})
	assert.Equal(t, model.EntityProject, draft.EntityType)
	assert.Equal(t, "p9", draft.EntityID)
	assert.Equal(t, model.ActionCreated, draft.Action)
	assert.Equal(t, `Created project "Launch"`, draft.Description)
}

func TestTaskCreated(t *testing.T) {
	draft := TaskCreated(model.Task{ID: "t9", Title: "Ship it"})
	assert.Equal(t, model.EntityTask, draft.EntityType)
	assert.Equal(t, `Created task "Ship it"`, draft.Description)
}

func TestTaskStatusChanged(t *testing.T) {
	old := model.Task{ID: "t1", Title: "Build hero section", Status: model.TaskTodo}

	draft, ok := TaskStatusChanged(old, model.TaskDone)
	assert.True(t, ok)
	assert.Equal(t, model.ActionCompleted, draft.Action)
	assert.Equal(t, `Marked "Build hero section" as done`, draft.Description)

	draft, ok = TaskStatusChanged(old, model.TaskInProgress)
	assert.True(t, ok)
	assert.Equal(t, model.ActionStatusChanged, draft.Action)
	assert.Equal(t, `Moved "Build hero section" to in progress`, draft.Description)

	_, ok = TaskStatusChanged(old, model.TaskTodo)
	assert.False(t, ok, "same status must not record")
}
