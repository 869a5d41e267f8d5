package domain

import (
	"errors"
	"time"
)

// MaxTitleLength caps note titles, matching the persisted schema constraint.
const MaxTitleLength = 100

// ErrNoteNotFound is returned both when a note does not exist and when it
// belongs to another user. Callers cannot distinguish the two cases, so a
// note id never confirms its existence to a non-owner.
var ErrNoteNotFound = errors.New("note not found")

var ErrInvalidNoteID = errors.New("invalid note ID")
var ErrTitleRequired = errors.New("title is required")
var ErrContentRequired = errors.New("content is required")
var ErrTitleTooLong = errors.New("title cannot be more than 100 characters")

// Note is a user-authored document. OwnerID is set at creation and never
// reassigned; every store operation filters by it.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
