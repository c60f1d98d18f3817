// Package report computes statistics and plain-text digests over the
// facade's read models. Everything here is a pure function of its inputs.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"taskboard/internal/model"
)

const dateLayout = "2006-01-02"

// Stats is a point-in-time summary of the board.
type Stats struct {
	TotalProjects    int
	ActiveProjects   int
	TotalTasks       int
	CompletedTasks   int
	OpenTasks        int
	Overdue          int
	DueToday         int
	HighPriorityOpen int
	ByStatus         map[model.TaskStatus]int
	CompletionPct    int
	// Trend holds completions per day over the last 7 days, oldest first,
	// judged by each done task's UpdatedAt.
	Trend [7]int
}

// Compute derives Stats from the current read models.
func Compute(projects []model.Project, tasks []model.Task, now time.Time) Stats {
	s := Stats{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
		ByStatus:      map[model.TaskStatus]int{},
	}
	for _, p := range projects {
		if p.Status == model.ProjectActive {
			s.ActiveProjects++
		}
	}
	today := now.Format(dateLayout)
	for _, t := range tasks {
		s.ByStatus[t.Status]++
		if t.Status == model.TaskDone {
			s.CompletedTasks++
			continue
		}
		s.OpenTasks++
		if t.Priority == model.PriorityHigh {
			s.HighPriorityOpen++
		}
		switch {
		case t.DueDate == "":
		case t.DueDate == today:
			s.DueToday++
		case overdue(t.DueDate, now):
			s.Overdue++
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionPct = int(float64(s.CompletedTasks)/float64(s.TotalTasks)*100 + 0.5)
	}
	for _, t := range tasks {
		if t.Status != model.TaskDone {
			continue
		}
		for i := 0; i < 7; i++ {
			day := now.AddDate(0, 0, i-6).Format(dateLayout)
			if t.UpdatedAt.Format(dateLayout) == day {
				s.Trend[i]++
			}
		}
	}
	return s
}

// OverdueTasks returns open tasks whose due date has passed, most urgent
// (oldest due date) first.
func OverdueTasks(tasks []model.Task, now time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Status != model.TaskDone && overdue(t.DueDate, now) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate < out[j].DueDate
	})
	return out
}

func overdue(dueDate string, now time.Time) bool {
	if dueDate == "" {
		return false
	}
	due, err := time.ParseInLocation(dateLayout, dueDate, now.Location())
	if err != nil {
		return false
	}
	today, _ := time.ParseInLocation(dateLayout, now.Format(dateLayout), now.Location())
	return due.Before(today)
}

// Digest renders a plain-text status summary suitable for a scheduled
// notification.
func Digest(projects []model.Project, tasks []model.Task, now time.Time) string {
	s := Compute(projects, tasks, now)

	var b strings.Builder
	b.WriteString("📋 Board summary\n")
	b.WriteString(fmt.Sprintf("🗓 %s\n\n", now.Format(dateLayout)))
	b.WriteString(fmt.Sprintf("Projects: %d (%d active)\n", s.TotalProjects, s.ActiveProjects))
	b.WriteString(fmt.Sprintf("Tasks: %d open / %d done (%d%% complete)\n",
		s.OpenTasks, s.CompletedTasks, s.CompletionPct))
	if s.DueToday > 0 {
		b.WriteString(fmt.Sprintf("⏳ Due today: %d\n", s.DueToday))
	}

	over := OverdueTasks(tasks, now)
	if len(over) > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ Overdue (%d)\n", len(over)))
		names := projectNames(projects)
		for _, t := range over {
			line := fmt.Sprintf("- %s (due %s)", strings.TrimSpace(t.Title), t.DueDate)
			if name, ok := names[t.ProjectID]; ok {
				line += fmt.Sprintf(" — %s", name)
			}
			b.WriteString(line + "\n")
		}
	}

	if s.HighPriorityOpen > 0 {
		b.WriteString(fmt.Sprintf("\n🔥 High priority open: %d\n", s.HighPriorityOpen))
	}
	return strings.TrimSpace(b.String())
}

func projectNames(projects []model.Project) map[string]string {
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	return names
}
