package domain

import "time"

// ActivityAction identifies a note lifecycle event.
type ActivityAction string

const (
	ActionCreated ActivityAction = "created"
	ActionUpdated ActivityAction = "updated"
	ActionDeleted ActivityAction = "deleted"
)

// NoteActivity is an audit record of a single note lifecycle event.
type NoteActivity struct {
	ID        string         `json:"id"`
	NoteID    string         `json:"noteId"`
	OwnerID   string         `json:"-"`
	Action    ActivityAction `json:"action"`
	Timestamp time.Time      `json:"timestamp"`
}
