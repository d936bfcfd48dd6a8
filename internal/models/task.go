package models

import "time"

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Valid reports whether s is one of the three allowed statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type PersonalTask struct {
	ID              uint64     `gorm:"primarykey;column:task_id" json:"task_id"`
	UserID          uint64     `gorm:"not null;index" json:"user_id"`
	TaskDescription string     `gorm:"type:text;not null" json:"task_description"`
	DueDate         time.Time  `gorm:"not null" json:"due_date"`
	Status          TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt       time.Time  `json:"-"`
	UpdatedAt       time.Time  `json:"-"`
}
