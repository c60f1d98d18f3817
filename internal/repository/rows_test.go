package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
)

// Mapping a task to its row form and back must be lossless for every valid
// enum combination, with and without a due date.
func TestTaskRowRoundTrip(t *testing.T) {
	statuses := []model.TaskStatus{model.TaskTodo, model.TaskInProgress, model.TaskReview, model.TaskDone}
	priorities := []model.Priority{model.PriorityLow, model.PriorityMedium, model.PriorityHigh}
	labels := []model.TaskLabel{model.LabelFrontend, model.LabelBackend, model.LabelBug, model.LabelUI, model.LabelFeature, model.LabelDocs}

	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	for _, status := range statuses {
		for _, priority := range priorities {
			for _, label := range labels {
				for _, dueDate := range []string{"", "2026-09-15"} {
					task := model.Task{
						ID:          "t42",
						ProjectID:   "p7",
						Title:       "Round trip",
						Description: "desc",
						Status:      status,
						Priority:    priority,
						Label:       label,
						DueDate:     dueDate,
						CreatedAt:   created,
						UpdatedAt:   updated,
					}
					row := taskRowFrom(task, "u1")
					assert.Equal(t, task, row.toModel())
				}
			}
		}
	}
}

func TestProjectRowRoundTrip(t *testing.T) {
	created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for _, dueDate := range []string{"", "2026-09-15"} {
		project := model.Project{
			ID:          "p7",
			Name:        "Round trip",
			Description: "desc",
			Status:      model.ProjectOnHold,
			Priority:    model.PriorityHigh,
			DueDate:     dueDate,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		row := projectRowFrom(project, "u1")
		assert.Equal(t, project, row.toModel())
	}
}

// Blank due dates map to NULL columns, never empty strings.
func TestBlankDueDateStoredAsNull(t *testing.T) {
	row := taskRowFrom(model.Task{Title: "x"}, "u1")
	assert.Nil(t, row.DueDate)

	due := "2026-09-15"
	row = taskRowFrom(model.Task{Title: "x", DueDate: due}, "u1")
	if assert.NotNil(t, row.DueDate) {
		assert.Equal(t, due, *row.DueDate)
	}
}

func TestOwnerStampedOnRows(t *testing.T) {
	assert.Equal(t, "u1", taskRowFrom(model.Task{}, "u1").OwnerID)
	assert.Equal(t, "u1", projectRowFrom(model.Project{}, "u1").OwnerID)
}
