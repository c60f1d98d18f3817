package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/model"
)

// Row types mirror the remote tables. Columns are snake_case and every row
// carries a user_id owner reference stamped on insert. Blank due dates are
// stored as NULL rather than empty strings.

type projectRow struct {
	ID          string `gorm:"primaryKey"`
	OwnerID     string `gorm:"column:user_id;index"`
	Name        string
	Description string
	Status      string
	Priority    string
	DueDate     *string `gorm:"column:due_date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (projectRow) TableName() string { return "projects" }

func (r *projectRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type taskRow struct {
	ID          string `gorm:"primaryKey"`
	OwnerID     string `gorm:"column:user_id;index"`
	ProjectID   string `gorm:"column:project_id;index"`
	Title       string
	Description string
	Status      string
	Priority    string
	Label       string
	DueDate     *string `gorm:"column:due_date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (taskRow) TableName() string { return "tasks" }

func (r *taskRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type commentRow struct {
	ID        string `gorm:"primaryKey"`
	OwnerID   string `gorm:"column:user_id;index"`
	TaskID    string `gorm:"column:task_id;index"`
	Content   string
	CreatedAt time.Time
}

func (commentRow) TableName() string { return "comments" }

func (r *commentRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type activityRow struct {
	ID          string `gorm:"primaryKey"`
	OwnerID     string `gorm:"column:user_id;index"`
	EntityType  string `gorm:"column:entity_type"`
	EntityID    string `gorm:"column:entity_id"`
	Action      string
	Description string
	CreatedAt   time.Time
}

func (activityRow) TableName() string { return "activity_logs" }

func (r *activityRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// nullableDate converts the domain's "" due date to a NULL column value.
func nullableDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// dateValue converts a NULL column back to the domain's "" due date.
func dateValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func projectRowFrom(p model.Project, owner string) projectRow {
	return projectRow{
		ID:          p.ID,
		OwnerID:     owner,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		DueDate:     nullableDate(p.DueDate),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r projectRow) toModel() model.Project {
	return model.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      model.ProjectStatus(r.Status),
		Priority:    model.Priority(r.Priority),
		DueDate:     dateValue(r.DueDate),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func taskRowFrom(t model.Task, owner string) taskRow {
	return taskRow{
		ID:          t.ID,
		OwnerID:     owner,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Label:       string(t.Label),
		DueDate:     nullableDate(t.DueDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r taskRow) toModel() model.Task {
	return model.Task{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Description: r.Description,
		Status:      model.TaskStatus(r.Status),
		Priority:    model.Priority(r.Priority),
		Label:       model.TaskLabel(r.Label),
		DueDate:     dateValue(r.DueDate),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r commentRow) toModel() model.Comment {
	return model.Comment{
		ID:        r.ID,
		TaskID:    r.TaskID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func (r activityRow) toModel() model.ActivityLog {
	return model.ActivityLog{
		ID:          r.ID,
		EntityType:  model.EntityType(r.EntityType),
		EntityID:    r.EntityID,
		Action:      r.Action,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}
