package dto

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	UserID          uint64 `json:"user_id" binding:"required"`
	TaskDescription string `json:"task_description" binding:"required"`
	DueDate         string `json:"due_date" binding:"required"`
	Status          string `json:"status" binding:"required"`
}

// UpdateTaskRequest is the body of PUT /tasks/:id. Nil fields are left
// unchanged.
type UpdateTaskRequest struct {
	TaskDescription *string `json:"task_description"`
	DueDate         *string `json:"due_date"`
	Status          *string `json:"status"`
}
