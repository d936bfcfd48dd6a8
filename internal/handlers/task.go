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

// TaskHandler serves CRUD on personal tasks.
type TaskHandler struct {
	taskRepo repository.TaskRepository
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskRepo repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// Create adds a task.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	status := models.TaskStatus(req.Status)
	if !status.Valid() {
		apierrors.BadRequest(c, "Invalid status")
		return
	}

	dueDate, err := timeformat.ParseDateTime(req.DueDate)
	if err != nil {
		apierrors.BadDate(c, err)
		return
	}

	task := &models.PersonalTask{
		UserID:          req.UserID,
		TaskDescription: req.TaskDescription,
		DueDate:         dueDate,
		Status:          status,
	}
	if err := h.taskRepo.Create(task); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Task created successfully"})
}

// List returns all tasks.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskRepo.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get returns one task by ID.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Update applies a partial update.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Task not found")
		return
	}

	task, err := h.taskRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.TaskDescription != nil {
		task.TaskDescription = *req.TaskDescription
	}
	if req.DueDate != nil {
		dueDate, err := timeformat.ParseDateTime(*req.DueDate)
		if err != nil {
			apierrors.BadDate(c, err)
			return
		}
		task.DueDate = dueDate
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		if !status.Valid() {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		task.Status = status
	}

	if err := h.taskRepo.Update(task); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Task not found")
		return
	}

	if _, err := h.taskRepo.FindByID(id); err != nil {
		apierrors.NotFound(c, "Task not found")
		return
	}

	if err := h.taskRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
