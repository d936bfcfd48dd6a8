package handlers

import (
	"net/http"

	"github.com/HenokhIS/You-Do/internal/dto"
	apierrors "github.com/HenokhIS/You-Do/internal/errors"
	"github.com/HenokhIS/You-Do/internal/models"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/HenokhIS/You-Do/internal/timeformat"
	"github.com/gin-gonic/gin"
)

// EventHandler serves CRUD on events (kegiatan).
type EventHandler struct {
	eventRepo repository.EventRepository
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventRepo repository.EventRepository) *EventHandler {
	return &EventHandler{eventRepo: eventRepo}
}

// Create adds an event. The creation path alone accepts the
// datetime-local layout for tanggal.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	tanggal, err := timeformat.ParseEventCreate(req.Tanggal)
	if err != nil {
		apierrors.BadDate(c, err)
		return
	}

	event := &models.Event{
		UserID:    req.UserID,
		Judul:     req.Judul,
		Deskripsi: req.Deskripsi,
		Tanggal:   tanggal,
		Tempat:    req.Tempat,
	}
	if err := h.eventRepo.Create(event); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully"})
}

// List returns all events.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventRepo.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get returns one event by ID.
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Event not found")
		return
	}

	event, err := h.eventRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Update applies a partial update. Unlike creation, tanggal here uses the
// space-separated layout.
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Event not found")
		return
	}

	event, err := h.eventRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Event not found")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Judul != nil {
		event.Judul = *req.Judul
	}
	if req.Deskripsi != nil {
		event.Deskripsi = *req.Deskripsi
	}
	if req.Tanggal != nil {
		tanggal, err := timeformat.ParseDateTime(*req.Tanggal)
		if err != nil {
			apierrors.BadDate(c, err)
			return
		}
		event.Tanggal = tanggal
	}
	if req.Tempat != nil {
		event.Tempat = *req.Tempat
	}

	if err := h.eventRepo.Update(event); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete removes an event.
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Event not found")
		return
	}

	if _, err := h.eventRepo.FindByID(id); err != nil {
		apierrors.NotFound(c, "Event not found")
		return
	}

	if err := h.eventRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}
