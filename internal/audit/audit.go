package audit

import "time"

// Action describes what was done to a post.
type Action string

const (
	ActionPostCreated Action = "post_created"
	ActionPostUpdated Action = "post_updated"
	ActionPostDeleted Action = "post_deleted"
)

// Entry is a single audit trail record.
type Entry struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Action        Action    `json:"action"`
	PostID        int64     `json:"post_id"`
	Summary       string    `json:"summary"`
	PreviousValue string    `json:"previous_value,omitempty"`
	NewValue      string    `json:"new_value,omitempty"`
}

// QueryFilter narrows an audit query. Zero values match everything.
type QueryFilter struct {
	Action Action
	PostID int64
	Limit  int
	Offset int
}
