package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/model"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func date(offset int) string {
	return now.AddDate(0, 0, offset).Format(dateLayout)
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "t1", ProjectID: "p1", Title: "Done yesterday", Status: model.TaskDone, Priority: model.PriorityHigh, DueDate: date(-3), UpdatedAt: now.AddDate(0, 0, -1)},
		{ID: "t2", ProjectID: "p1", Title: "Overdue", Status: model.TaskTodo, Priority: model.PriorityHigh, DueDate: date(-2)},
		{ID: "t3", ProjectID: "p1", Title: "Due today", Status: model.TaskInProgress, Priority: model.PriorityMedium, DueDate: date(0)},
		{ID: "t4", ProjectID: "p2", Title: "Upcoming", Status: model.TaskReview, Priority: model.PriorityLow, DueDate: date(5)},
		{ID: "t5", ProjectID: "p2", Title: "No due date", Status: model.TaskTodo, Priority: model.PriorityLow},
	}
}

func sampleProjects() []model.Project {
	return []model.Project{
		{ID: "p1", Name: "Alpha", Status: model.ProjectActive},
		{ID: "p2", Name: "Beta", Status: model.ProjectOnHold},
	}
}

func TestCompute(t *testing.T) {
	s := Compute(sampleProjects(), sampleTasks(), now)

	assert.Equal(t, 2, s.TotalProjects)
	assert.Equal(t, 1, s.ActiveProjects)
	assert.Equal(t, 5, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, 4, s.OpenTasks)
	assert.Equal(t, 1, s.Overdue)
	assert.Equal(t, 1, s.DueToday)
	assert.Equal(t, 1, s.HighPriorityOpen)
	assert.Equal(t, 20, s.CompletionPct)
	assert.Equal(t, 2, s.ByStatus[model.TaskTodo])
	assert.Equal(t, 1, s.ByStatus[model.TaskDone])
	// t1 finished one day ago, inside the 7-day trend window.
	assert.Equal(t, 1, s.Trend[5])
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, nil, now)
	assert.Equal(t, 0, s.CompletionPct)
	assert.Equal(t, 0, s.TotalTasks)
}

func TestOverdueTasks(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Title: "Older", Status: model.TaskTodo, DueDate: date(-5)},
		{ID: "b", Title: "Newer", Status: model.TaskTodo, DueDate: date(-1)},
		{ID: "c", Title: "Done", Status: model.TaskDone, DueDate: date(-5)},
		{ID: "d", Title: "Today", Status: model.TaskTodo, DueDate: date(0)},
		{ID: "e", Title: "Dateless", Status: model.TaskTodo},
	}
	over := OverdueTasks(tasks, now)
	if assert.Len(t, over, 2) {
		assert.Equal(t, "a", over[0].ID, "most urgent first")
		assert.Equal(t, "b", over[1].ID)
	}
}

func TestDigest(t *testing.T) {
	text := Digest(sampleProjects(), sampleTasks(), now)

	assert.Contains(t, text, "Projects: 2 (1 active)")
	assert.Contains(t, text, "4 open / 1 done (20% complete)")
	assert.Contains(t, text, "Due today: 1")
	assert.Contains(t, text, "Overdue (1)")
	assert.Contains(t, text, "Overdue (due "+date(-2)+") — Alpha")
	assert.Contains(t, text, "High priority open: 1")
}
