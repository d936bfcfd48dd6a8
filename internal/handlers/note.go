package handlers

import (
	"net/http"

	"github.com/HenokhIS/You-Do/internal/dto"
	apierrors "github.com/HenokhIS/You-Do/internal/errors"
	"github.com/HenokhIS/You-Do/internal/models"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/gin-gonic/gin"
)

// NoteHandler serves CRUD on notes (catatan).
type NoteHandler struct {
	noteRepo repository.NoteRepository
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteRepo repository.NoteRepository) *NoteHandler {
	return &NoteHandler{noteRepo: noteRepo}
}

// Create adds a note.
func (h *NoteHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note := &models.Note{
		UserID:  req.UserID,
		Catatan: req.Catatan,
	}
	if err := h.noteRepo.Create(note); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Note created successfully"})
}

// List returns all notes.
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteRepo.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, notes)
}

// Get returns one note by ID.
func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Note not found")
		return
	}

	note, err := h.noteRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}
	c.JSON(http.StatusOK, note)
}

// Update applies a partial update.
func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Note not found")
		return
	}

	note, err := h.noteRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Catatan != nil {
		note.Catatan = *req.Catatan
	}

	if err := h.noteRepo.Update(note); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, note)
}

// Delete removes a note.
func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Note not found")
		return
	}

	if _, err := h.noteRepo.FindByID(id); err != nil {
		apierrors.NotFound(c, "Note not found")
		return
	}

	if err := h.noteRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
