package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

// ProjectRepository handles CRUD for the projects table.
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns the owner's projects, newest first.
func (r *ProjectRepository) List(ctx context.Context, owner string) ([]model.Project, error) {
	var rows []projectRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", owner).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects := make([]model.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toModel()
	}
	return projects, nil
}

// Create inserts a project and returns the stored representation with the
// server-assigned id and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, owner string, in model.ProjectInput) (model.Project, error) {
	row := projectRow{
		OwnerID:     owner,
		Name:        in.Name,
		Description: in.Description,
		Status:      string(in.Status),
		Priority:    string(in.Priority),
		DueDate:     nullableDate(in.DueDate),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Project{}, fmt.Errorf("create project: %w", err)
	}
	return row.toModel(), nil
}

// Update applies the non-nil patch fields and returns the stored row.
func (r *ProjectRepository) Update(ctx context.Context, owner, id string, patch model.ProjectPatch) (model.Project, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
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
	if patch.DueDate != nil {
		updates["due_date"] = nullableDate(*patch.DueDate)
	}

	db := r.db.WithContext(ctx)
	if len(updates) > 0 {
		res := db.Model(&projectRow{}).Where("user_id = ? AND id = ?", owner, id).Updates(updates)
		if res.Error != nil {
			return model.Project{}, fmt.Errorf("update project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return model.Project{}, fmt.Errorf("update project %s: %w", id, store.ErrNotFound)
		}
	}

	var row projectRow
	if err := db.Where("user_id = ? AND id = ?", owner, id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Project{}, fmt.Errorf("update project %s: %w", id, store.ErrNotFound)
		}
		return model.Project{}, fmt.Errorf("reload project: %w", err)
	}
	return row.toModel(), nil
}

// Delete removes the project row only; task cascades live in Remote.
func (r *ProjectRepository) Delete(ctx context.Context, owner, id string) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", owner, id).Delete(&projectRow{})
	if res.Error != nil {
		return fmt.Errorf("delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete project %s: %w", id, store.ErrNotFound)
	}
	return nil
}
