package model

import "time"

// Comment is an immutable note attached to a task.
type Comment struct {
	ID        string
	TaskID    string
	Content   string
	CreatedAt time.Time
}
