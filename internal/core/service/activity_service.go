package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quicknote/notes-api/internal/api/metrics"
	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists lifecycle
// events delivered by the dispatcher workers.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

func (s *activityService) Process(ctx context.Context, in ports.ActivityInput) error {
	record := &domain.NoteActivity{
		NoteID:    in.NoteID,
		OwnerID:   in.OwnerID,
		Action:    in.Action,
		Timestamp: in.Timestamp,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityRecordedTotal.WithLabelValues(string(in.Action)).Inc()
	s.log.Debug().
		Str("note_id", in.NoteID).
		Str("action", string(in.Action)).
		Msg("activity recorded")
	return nil
}

func (s *activityService) ListForNote(ctx context.Context, ownerID, noteID string) ([]*domain.NoteActivity, error) {
	return s.repo.ListByNote(ctx, ownerID, noteID)
}
