package repository

import (
	"github.com/HenokhIS/You-Do/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

func (r *GormTaskRepository) Create(task *models.PersonalTask) error {
	return r.db.Create(task).Error
}

func (r *GormTaskRepository) FindByID(id uint64) (*models.PersonalTask, error) {
	var task models.PersonalTask
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns every task in the store, across all users.
func (r *GormTaskRepository) List() ([]models.PersonalTask, error) {
	var tasks []models.PersonalTask
	if err := r.db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *GormTaskRepository) Update(task *models.PersonalTask) error {
	return r.db.Save(task).Error
}

func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.PersonalTask{}, id).Error
}
