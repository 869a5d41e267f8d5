package ports

import (
	"context"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// ActivityRepository persists note lifecycle audit records.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.NoteActivity) error
	ListByNote(ctx context.Context, ownerID, noteID string) ([]*domain.NoteActivity, error)
}
