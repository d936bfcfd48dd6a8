package dto

// CreateNoteRequest is the body of POST /notes.
type CreateNoteRequest struct {
	UserID  uint64 `json:"user_id" binding:"required"`
	Catatan string `json:"catatan" binding:"required"`
}

// UpdateNoteRequest is the body of PUT /notes/:id.
type UpdateNoteRequest struct {
	Catatan *string `json:"catatan"`
}
