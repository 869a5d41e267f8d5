package ports

import (
	"context"
	"time"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// ActivityInput is a single note lifecycle event queued for recording.
type ActivityInput struct {
	NoteID    string
	OwnerID   string
	Action    domain.ActivityAction
	Timestamp time.Time
}

// ActivityService records note lifecycle events and serves the per-note
// activity trail.
type ActivityService interface {
	Process(ctx context.Context, in ActivityInput) error
	ListForNote(ctx context.Context, ownerID, noteID string) ([]*domain.NoteActivity, error)
}
