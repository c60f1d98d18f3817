package model

import "time"

// EntityType names the kind of entity an activity entry refers to.
type EntityType string

const (
	EntityProject EntityType = "project"
	EntityTask    EntityType = "task"
	EntityComment EntityType = "comment"
)

// Actions recorded in the activity log.
const (
	ActionCreated       = "created"
	ActionCompleted     = "completed"
	ActionStatusChanged = "status_changed"
)

// ActivityLog is an append-only record of a mutation. Entries are never
// updated or deleted once written.
type ActivityLog struct {
	ID          string
	EntityType  EntityType
	EntityID    string
	Action      string
	Description string
	CreatedAt   time.Time
}

// ActivityDraft is an activity entry before the storage backend assigns
// its id and timestamp.
type ActivityDraft struct {
	EntityType  EntityType
	EntityID    string
	Action      string
	Description string
}
