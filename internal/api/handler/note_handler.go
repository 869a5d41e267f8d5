package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicknote/notes-api/internal/core/ports"
)

// NoteHandler handles the ownership-scoped note routes. Identity comes from
// the Auth middleware; the handlers never trust ids from the request body.
type NoteHandler struct {
	notes    ports.NoteService
	activity ports.ActivityService
}

func NewNoteHandler(notes ports.NoteService, activity ports.ActivityService) *NoteHandler {
	return &NoteHandler{notes: notes, activity: activity}
}

// List handles GET /api/notes.
//
// @Summary      List the caller's notes, newest first
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Text search over title and content"
// @Success      200     {object}  noteListEnvelope
// @Failure      401     {object}  messageEnvelope
// @Failure      500     {object}  messageEnvelope
// @Router       /api/notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	ownerID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	details, err := h.notes.List(c.Request().Context(), ownerID, c.QueryParam("search"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteListEnvelope{Success: true, Data: toNoteList(details)})
}

// Get handles GET /api/notes/:id.
//
// @Summary      Get a single note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  noteEnvelope
// @Failure      400  {object}  messageEnvelope
// @Failure      404  {object}  messageEnvelope
// @Router       /api/notes/{id} [get]
func (h *NoteHandler) Get(c echo.Context) error {
	ownerID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	detail, err := h.notes.Get(c.Request().Context(), ownerID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteEnvelope{Success: true, Data: toNoteResponse(*detail)})
}

// Create handles POST /api/notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note fields"
// @Success      201   {object}  noteEnvelope
// @Failure      400   {object}  messageEnvelope
// @Router       /api/notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	ownerID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.notes.Create(c.Request().Context(), ownerID, req.Title, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, noteEnvelope{Success: true, Data: toNoteResponse(*detail)})
}

// Update handles PUT /api/notes/:id. Omitted (or empty) fields keep their
// stored values.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Note id"
// @Param        body  body      updateNoteRequest  true  "Fields to update"
// @Success      200   {object}  noteEnvelope
// @Failure      400   {object}  messageEnvelope
// @Failure      404   {object}  messageEnvelope
// @Router       /api/notes/{id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	ownerID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.notes.Update(c.Request().Context(), ownerID, c.Param("id"), ports.UpdateNoteInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, noteEnvelope{Success: true, Data: toNoteResponse(*detail)})
}

// Delete handles DELETE /api/notes/:id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  messageEnvelope
// @Failure      400  {object}  messageEnvelope
// @Failure      404  {object}  messageEnvelope
// @Router       /api/notes/{id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	ownerID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.notes.Delete(c.Request().Context(), ownerID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageEnvelope{Success: true, Message: "Note deleted successfully"})
}

// Activity handles GET /api/notes/:id/activity.
//
// @Summary      List a note's lifecycle events
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Note id"
// @Success      200  {object}  activityListEnvelope
// @Failure      400  {object}  messageEnvelope
// @Failure      404  {object}  messageEnvelope
// @Router       /api/notes/{id}/activity [get]
func (h *NoteHandler) Activity(c echo.Context) error {
	ownerID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	// Ownership check first: a foreign note must 404, not return an empty
	// trail.
	noteID := c.Param("id")
	if _, err := h.notes.Get(c.Request().Context(), ownerID, noteID); err != nil {
		return err
	}

	records, err := h.activity.ListForNote(c.Request().Context(), ownerID, noteID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, activityListEnvelope{Success: true, Data: toActivityList(records)})
}
