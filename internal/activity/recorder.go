// Package activity derives human-readable log entries from mutations.
// Entries are produced only as a side effect of creates and status changes;
// plain field edits, comments and deletions leave no trace.
package activity

import (
	"fmt"

	"taskboard/internal/model"
)

// ProjectCreated describes a freshly created project.
func ProjectCreated(p model.Project) model.ActivityDraft {
	return model.ActivityDraft{
		EntityType:  model.EntityProject,
		EntityID:    p.ID,
		Action:      model.ActionCreated,
		Description: fmt.Sprintf("Created project %q", p.Name),
	}
}

// TaskCreated describes a freshly created task.
func TaskCreated(t model.Task) model.ActivityDraft {
	return model.ActivityDraft{
		EntityType:  model.EntityTask,
		EntityID:    t.ID,
		Action:      model.ActionCreated,
		Description: fmt.Sprintf("Created task %q", t.Title),
	}
}

// TaskStatusChanged describes a task moving between statuses. It reports
// ok=false when the status did not actually change, in which case nothing
// should be recorded.
func TaskStatusChanged(old model.Task, next model.TaskStatus) (model.ActivityDraft, bool) {
	if next == old.Status {
		return model.ActivityDraft{}, false
	}
	draft := model.ActivityDraft{
		EntityType: model.EntityTask,
		EntityID:   old.ID,
	}
	if next == model.TaskDone {
		draft.Action = model.ActionCompleted
		draft.Description = fmt.Sprintf("Marked %q as done", old.Title)
	} else {
		draft.Action = model.ActionStatusChanged
		draft.Description = fmt.Sprintf("Moved %q to %s", old.Title, next.Humanize())
	}
	return draft, true
}
