package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/quicknote/notes-api/internal/api/metrics"
	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
)

// ActivityRecorder abstracts the async activity pipeline. A nil recorder
// disables the trail.
type ActivityRecorder interface {
	Enqueue(in ports.ActivityInput)
}

// NoteService implements the ownership-scoped note store. Ownership is
// enforced by the repository queries themselves: every lookup carries the
// caller's id, so a foreign note and a missing note are the same failure.
type NoteService struct {
	notes    ports.NoteRepository
	users    ports.UserRepository
	recorder ActivityRecorder
	logger   zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, users ports.UserRepository, recorder ActivityRecorder, logger zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, users: users, recorder: recorder, logger: logger}
}

func (s *NoteService) List(ctx context.Context, ownerID, search string) ([]ports.NoteDetail, error) {
	notes, err := s.notes.FindByOwner(ctx, ownerID, strings.TrimSpace(search))
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to list notes")
		return nil, err
	}

	owner, err := s.ownerSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]ports.NoteDetail, 0, len(notes))
	for _, n := range notes {
		details = append(details, toDetail(n, owner))
	}
	return details, nil
}

func (s *NoteService) Get(ctx context.Context, ownerID, noteID string) (*ports.NoteDetail, error) {
	note, err := s.notes.FindByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	owner, err := s.ownerSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	detail := toDetail(note, owner)
	return &detail, nil
}

func (s *NoteService) Create(ctx context.Context, ownerID, title, content string) (*ports.NoteDetail, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, domain.ErrContentRequired
	}

	now := time.Now().UTC()
	note := &domain.Note{
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.notes.Insert(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create note")
		return nil, err
	}

	metrics.NotesCreatedTotal.Inc()
	s.record(created.ID, ownerID, domain.ActionCreated)
	s.logger.Info().Str("note_id", created.ID).Str("owner_id", ownerID).Msg("note created")

	owner, err := s.ownerSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	detail := toDetail(created, owner)
	return &detail, nil
}

// Update applies only the supplied fields. An empty field means "keep the
// stored value", so a client cannot clear a field to empty through this
// operation. Long-standing contract; clients depend on it.
func (s *NoteService) Update(ctx context.Context, ownerID, noteID string, in ports.UpdateNoteInput) (*ports.NoteDetail, error) {
	note, err := s.notes.FindByID(ctx, ownerID, noteID)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		title := strings.TrimSpace(in.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		note.Title = title
	}
	if in.Content != "" {
		content := strings.TrimSpace(in.Content)
		if content == "" {
			return nil, domain.ErrContentRequired
		}
		note.Content = content
	}
	note.UpdatedAt = time.Now().UTC()

	updated, err := s.notes.Update(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Str("note_id", noteID).Msg("failed to update note")
		return nil, err
	}

	s.record(updated.ID, ownerID, domain.ActionUpdated)

	owner, err := s.ownerSummary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	detail := toDetail(updated, owner)
	return &detail, nil
}

func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := s.notes.Delete(ctx, ownerID, noteID); err != nil {
		return err
	}

	metrics.NotesDeletedTotal.Inc()
	s.record(noteID, ownerID, domain.ActionDeleted)
	s.logger.Info().Str("note_id", noteID).Str("owner_id", ownerID).Msg("note deleted")
	return nil
}

func (s *NoteService) record(noteID, ownerID string, action domain.ActivityAction) {
	if s.recorder == nil {
		return
	}
	s.recorder.Enqueue(ports.ActivityInput{
		NoteID:    noteID,
		OwnerID:   ownerID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func (s *NoteService) ownerSummary(ctx context.Context, ownerID string) (ports.OwnerSummary, error) {
	user, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return ports.OwnerSummary{}, err
	}
	return ports.OwnerSummary{ID: user.ID, Name: user.FullName, Email: user.Email}, nil
}

func validateTitle(title string) error {
	if title == "" {
		return domain.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > domain.MaxTitleLength {
		return domain.ErrTitleTooLong
	}
	return nil
}

func toDetail(n *domain.Note, owner ports.OwnerSummary) ports.NoteDetail {
	return ports.NoteDetail{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Owner:     owner,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
