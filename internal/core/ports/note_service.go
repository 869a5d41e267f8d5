package ports

import (
	"context"
	"time"
)

// OwnerSummary is the slice of the owning user embedded in note results.
type OwnerSummary struct {
	ID    string
	Name  string
	Email string
}

// NoteDetail is the service-level view of a note with its owner resolved.
type NoteDetail struct {
	ID        string
	Title     string
	Content   string
	Owner     OwnerSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateNoteInput carries the fields of a partial update. An empty field is
// treated as "not supplied" and the stored value is kept.
type UpdateNoteInput struct {
	Title   string
	Content string
}

// NoteService exposes the note store. Every operation is scoped to the
// caller's verified identity; a note owned by someone else behaves exactly
// like a note that does not exist.
type NoteService interface {
	List(ctx context.Context, ownerID, search string) ([]NoteDetail, error)
	Get(ctx context.Context, ownerID, noteID string) (*NoteDetail, error)
	Create(ctx context.Context, ownerID, title, content string) (*NoteDetail, error)
	Update(ctx context.Context, ownerID, noteID string, in UpdateNoteInput) (*NoteDetail, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}
