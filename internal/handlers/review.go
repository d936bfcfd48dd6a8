package handlers

import (
	"fmt"
	"net/http"

	"github.com/HenokhIS/You-Do/internal/dto"
	apierrors "github.com/HenokhIS/You-Do/internal/errors"
	"github.com/HenokhIS/You-Do/internal/models"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/HenokhIS/You-Do/internal/timeformat"
	"github.com/gin-gonic/gin"
)

// ReviewHandler serves CRUD on event reviews.
type ReviewHandler struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewRepo repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepo: reviewRepo}
}

func validRating(rating int) bool {
	return rating >= models.MinRating && rating <= models.MaxRating
}

// Create adds a review.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if !validRating(req.Rating) {
		apierrors.BadRequest(c, fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
		return
	}

	tanggalReview, err := timeformat.ParseDateTime(req.TanggalReview)
	if err != nil {
		apierrors.BadDate(c, err)
		return
	}

	review := &models.Review{
		UserID:        req.UserID,
		KegiatanID:    req.KegiatanID,
		Rating:        req.Rating,
		Komentar:      req.Komentar,
		TanggalReview: tanggalReview,
	}
	if err := h.reviewRepo.Create(review); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully"})
}

// List returns all reviews.
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewRepo.List()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Get returns one review by ID.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Review not found")
		return
	}

	review, err := h.reviewRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Review not found")
		return
	}
	c.JSON(http.StatusOK, review)
}

// Update applies a partial update.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Review not found")
		return
	}

	review, err := h.reviewRepo.FindByID(id)
	if err != nil {
		apierrors.NotFound(c, "Review not found")
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Rating != nil {
		if !validRating(*req.Rating) {
			apierrors.BadRequest(c, fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
			return
		}
		review.Rating = *req.Rating
	}
	if req.Komentar != nil {
		review.Komentar = *req.Komentar
	}
	if req.TanggalReview != nil {
		tanggalReview, err := timeformat.ParseDateTime(*req.TanggalReview)
		if err != nil {
			apierrors.BadDate(c, err)
			return
		}
		review.TanggalReview = tanggalReview
	}

	if err := h.reviewRepo.Update(review); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, review)
}

// Delete removes a review.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		apierrors.NotFound(c, "Review not found")
		return
	}

	if _, err := h.reviewRepo.FindByID(id); err != nil {
		apierrors.NotFound(c, "Review not found")
		return
	}

	if err := h.reviewRepo.Delete(id); err != nil {
		apierrors.InternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
