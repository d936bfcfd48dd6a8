package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HenokhIS/You-Do/internal/database"
	"github.com/HenokhIS/You-Do/internal/models"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupReviewEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Review{}))
	database.SetDB(db)

	handler := NewReviewHandler(repository.NewReviewRepository(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/reviews", handler.Create)
	r.GET("/reviews", handler.List)
	r.GET("/reviews/:id", handler.Get)
	r.PUT("/reviews/:id", handler.Update)
	r.DELETE("/reviews/:id", handler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r, db
}

func TestReviewHandler_Create(t *testing.T) {
	r, db := setupReviewEnv(t)

	w := postJSON(t, r, "/reviews", map[string]interface{}{
		"user_id":        1,
		"kegiatan_id":    3,
		"rating":         4,
		"komentar":       "Seru sekali",
		"tanggal_review": "2024-03-11 20:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var review models.Review
	require.NoError(t, db.First(&review).Error)
	require.Equal(t, 4, review.Rating)
	require.Equal(t, uint64(3), review.KegiatanID)
}

func TestReviewHandler_RatingBounds(t *testing.T) {
	r, _ := setupReviewEnv(t)

	for _, rating := range []int{-1, 0, 6, 100} {
		w := postJSON(t, r, "/reviews", map[string]interface{}{
			"user_id":        1,
			"kegiatan_id":    3,
			"rating":         rating,
			"tanggal_review": "2024-03-11 20:00:00",
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "rating %d must be rejected", rating)
	}

	for rating := models.MinRating; rating <= models.MaxRating; rating++ {
		w := postJSON(t, r, "/reviews", map[string]interface{}{
			"user_id":        1,
			"kegiatan_id":    3,
			"rating":         rating,
			"tanggal_review": "2024-03-11 20:00:00",
		})
		require.Equal(t, http.StatusCreated, w.Code, "rating %d must be accepted", rating)
	}
}

func TestReviewHandler_UpdateRatingOnly(t *testing.T) {
	r, _ := setupReviewEnv(t)

	w := postJSON(t, r, "/reviews", map[string]interface{}{
		"user_id":        1,
		"kegiatan_id":    3,
		"rating":         2,
		"komentar":       "Lumayan",
		"tanggal_review": "2024-03-11 20:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodPut, "/reviews/1", jsonBody(t, map[string]interface{}{
		"rating": 5,
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var review models.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &review))
	require.Equal(t, 5, review.Rating)
	require.Equal(t, "Lumayan", review.Komentar)

	req = httptest.NewRequest(http.MethodPut, "/reviews/1", jsonBody(t, map[string]interface{}{
		"rating": 9,
	}))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewHandler_BadDate(t *testing.T) {
	r, _ := setupReviewEnv(t)

	w := postJSON(t, r, "/reviews", map[string]interface{}{
		"user_id":        1,
		"kegiatan_id":    3,
		"rating":         4,
		"tanggal_review": "2024-03-11T20:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid datetime format")
}

func TestReviewHandler_DeleteThenGet(t *testing.T) {
	r, _ := setupReviewEnv(t)

	w := postJSON(t, r, "/reviews", map[string]interface{}{
		"user_id":        1,
		"kegiatan_id":    3,
		"rating":         4,
		"tanggal_review": "2024-03-11 20:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/reviews/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/reviews/1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
