package handler

import (
	"github.com/quicknote/notes-api/internal/core/domain"
	"github.com/quicknote/notes-api/internal/core/ports"
)

func toNoteResponse(d ports.NoteDetail) noteResponse {
	return noteResponse{
		ID:      d.ID,
		Title:   d.Title,
		Content: d.Content,
		User: noteOwnerResponse{
			ID:    d.Owner.ID,
			Name:  d.Owner.Name,
			Email: d.Owner.Email,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toNoteList(details []ports.NoteDetail) []noteResponse {
	out := make([]noteResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toNoteResponse(d))
	}
	return out
}

func toActivityList(records []*domain.NoteActivity) []activityResponse {
	out := make([]activityResponse, 0, len(records))
	for _, r := range records {
		out = append(out, activityResponse{
			ID:        r.ID,
			NoteID:    r.NoteID,
			Action:    string(r.Action),
			Timestamp: r.Timestamp,
		})
	}
	return out
}
