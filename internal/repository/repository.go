package repository

import (
	"errors"
	"strings"

	"github.com/HenokhIS/You-Do/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id uint64) error
}

// EventRepository defines the interface for event (kegiatan) data access
type EventRepository interface {
	Create(event *models.Event) error
	FindByID(id uint64) (*models.Event, error)
	List() ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint64) error
}

// TaskRepository defines the interface for personal task data access
type TaskRepository interface {
	Create(task *models.PersonalTask) error
	FindByID(id uint64) (*models.PersonalTask, error)
	List() ([]models.PersonalTask, error)
	Update(task *models.PersonalTask) error
	Delete(id uint64) error
}

// ReviewRepository defines the interface for review data access
type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id uint64) (*models.Review, error)
	List() ([]models.Review, error)
	Update(review *models.Review) error
	Delete(id uint64) error
}

// NoteRepository defines the interface for note (catatan) data access
type NoteRepository interface {
	Create(note *models.Note) error
	FindByID(id uint64) (*models.Note, error)
	List() ([]models.Note, error)
	Update(note *models.Note) error
	Delete(id uint64) error
}

// IsDuplicateKeyError reports whether err is a unique-constraint violation.
// The string checks cover drivers that predate gorm.ErrDuplicatedKey mapping.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "Duplicate entry") ||
		strings.Contains(s, "UNIQUE constraint failed")
}
