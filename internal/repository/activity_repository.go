package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/store"
)

// ActivityRepository handles the append-only activity_logs table. Rows are
// inserted as a side effect of other mutations and never changed afterwards.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns the owner's most recent activity, newest first.
func (r *ActivityRepository) List(ctx context.Context, owner string) ([]model.ActivityLog, error) {
	var rows []activityRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", owner).
		Order("created_at DESC").
		Limit(store.ActivityLimit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	entries := make([]model.ActivityLog, len(rows))
	for i, row := range rows {
		entries[i] = row.toModel()
	}
	return entries, nil
}

// Create inserts an activity entry and returns the stored representation.
func (r *ActivityRepository) Create(ctx context.Context, owner string, draft model.ActivityDraft) (model.ActivityLog, error) {
	row := activityRow{
		OwnerID:     owner,
		EntityType:  string(draft.EntityType),
		EntityID:    draft.EntityID,
		Action:      draft.Action,
		Description: draft.Description,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.ActivityLog{}, fmt.Errorf("create activity: %w", err)
	}
	return row.toModel(), nil
}
