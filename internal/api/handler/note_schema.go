package handler

import "time"

// --- Request types ---

type signupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// createNoteRequest leaves the title length cap to the service, which trims
// surrounding whitespace before measuring.
type createNoteRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateNoteRequest carries a partial update. An absent field and an empty
// field are indistinguishable after binding; both mean "keep the stored
// value".
type updateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// --- Response types ---
// Success bodies use the {success, data} envelope; DELETE and error bodies
// use {success, message}.

type userResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userEnvelope struct {
	Success bool         `json:"success"`
	Data    userResponse `json:"data"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type noteOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type noteResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	User      noteOwnerResponse `json:"user"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type noteEnvelope struct {
	Success bool         `json:"success"`
	Data    noteResponse `json:"data"`
}

type noteListEnvelope struct {
	Success bool           `json:"success"`
	Data    []noteResponse `json:"data"`
}

type messageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type activityResponse struct {
	ID        string    `json:"id"`
	NoteID    string    `json:"noteId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type activityListEnvelope struct {
	Success bool               `json:"success"`
	Data    []activityResponse `json:"data"`
}
