package repository

import (
	"github.com/HenokhIS/You-Do/internal/models"
	"gorm.io/gorm"
)

// GormReviewRepository is a GORM implementation of ReviewRepository
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *GormReviewRepository) FindByID(id uint64) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// List returns every review in the store, across all users.
func (r *GormReviewRepository) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *GormReviewRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Review{}, id).Error
}
