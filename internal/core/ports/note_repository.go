package ports

import (
	"context"

	"github.com/quicknote/notes-api/internal/core/domain"
)

// NoteRepository defines the persistence interface for notes. Every read and
// write is filtered by ownerID so ownership enforcement happens in the query
// itself, not in a separate check.
type NoteRepository interface {
	Insert(ctx context.Context, note *domain.Note) (*domain.Note, error)
	// FindByOwner returns the owner's notes newest-first. A non-empty search
	// term restricts results via the title/content text index.
	FindByOwner(ctx context.Context, ownerID, search string) ([]*domain.Note, error)
	FindByID(ctx context.Context, ownerID, noteID string) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}
