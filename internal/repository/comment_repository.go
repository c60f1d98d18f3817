package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// CommentRepository handles the comments table. Comments are immutable, so
// there is no update path.
type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// List returns the owner's comments, oldest first.
func (r *CommentRepository) List(ctx context.Context, owner string) ([]model.Comment, error) {
	var rows []commentRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", owner).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments := make([]model.Comment, len(rows))
	for i, row := range rows {
		comments[i] = row.toModel()
	}
	return comments, nil
}

// Create inserts a comment and returns the stored representation.
func (r *CommentRepository) Create(ctx context.Context, owner, taskID, content string) (model.Comment, error) {
	row := commentRow{
		OwnerID: owner,
		TaskID:  taskID,
		Content: content,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return row.toModel(), nil
}

// DeleteByTask removes every comment referencing the task.
func (r *CommentRepository) DeleteByTask(ctx context.Context, owner, taskID string) error {
	if err := r.db.WithContext(ctx).Where("user_id = ? AND task_id = ?", owner, taskID).
		Delete(&commentRow{}).Error; err != nil {
		return fmt.Errorf("delete task comments: %w", err)
	}
	return nil
}

// DeleteByTasks removes comments referencing any of the given tasks.
func (r *CommentRepository) DeleteByTasks(ctx context.Context, owner string, taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("user_id = ? AND task_id IN ?", owner, taskIDs).
		Delete(&commentRow{}).Error; err != nil {
		return fmt.Errorf("delete task comments: %w", err)
	}
	return nil
}
