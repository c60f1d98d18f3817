package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

// TaskRepository handles CRUD for the tasks table.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns the owner's tasks, newest first.
func (r *TaskRepository) List(ctx context.Context, owner string) ([]model.Task, error) {
	var rows []taskRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	return tasks, nil
}

// Create inserts a task and returns the stored representation with the
// server-assigned id and timestamps.
func (r *TaskRepository) Create(ctx context.Context, owner string, in model.TaskInput) (model.Task, error) {
	row := taskRow{
		OwnerID:     owner,
		ProjectID:   in.ProjectID,
		Title:       in.Title,
		Description: in.Description,
		Status:      string(in.Status),
		Priority:    string(in.Priority),
		Label:       string(in.Label),
		DueDate:     nullableDate(in.DueDate),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}
	return row.toModel(), nil
}

// Update applies the non-nil patch fields and returns the stored row.
func (r *TaskRepository) Update(ctx context.Context, owner, id string, patch model.TaskPatch) (model.Task, error) {
	updates := map[string]interface{}{}
	if patch.ProjectID != nil {
		updates["project_id"] = *patch.ProjectID
	}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		updates["priority"] = string(*patch.Priority)
	}
	if patch.Label != nil {
		updates["label"] = string(*patch.Label)
	}
	if patch.DueDate != nil {
		updates["due_date"] = nullableDate(*patch.DueDate)
	}

	db := r.db.WithContext(ctx)
	if len(updates) > 0 {
		res := db.Model(&taskRow{}).Where("user_id = ? AND id = ?", owner, id).Updates(updates)
		if res.Error != nil {
			return model.Task{}, fmt.Errorf("update task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return model.Task{}, fmt.Errorf("update task %s: %w", id, store.ErrNotFound)
		}
	}

	var row taskRow
	if err := db.Where("user_id = ? AND id = ?", owner, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Task{}, fmt.Errorf("update task %s: %w", id, store.ErrNotFound)
		}
		return model.Task{}, fmt.Errorf("reload task: %w", err)
	}
	return row.toModel(), nil
}

// Delete removes the task row only; comment cascades live in Remote.
func (r *TaskRepository) Delete(ctx context.Context, owner, id string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", owner, id).Delete(&taskRow{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete task %s: %w", id, store.ErrNotFound)
	}
	return nil
}

// IDsByProject returns ids of the project's tasks, for comment cascades.
func (r *TaskRepository) IDsByProject(ctx context.Context, owner, projectID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&taskRow{}).
		Where("user_id = ? AND project_id = ?", owner, projectID).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("list task ids: %w", err)
	}
	return ids, nil
}

// DeleteByProject removes every task referencing the project.
func (r *TaskRepository) DeleteByProject(ctx context.Context, owner, projectID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND project_id = ?", owner, projectID).
		Delete(&taskRow{}).Error; err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}
	return nil
}
