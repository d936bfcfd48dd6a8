package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/HenokhIS/You-Do/internal/database"
	"github.com/HenokhIS/You-Do/internal/models"
	"github.com/HenokhIS/You-Do/internal/repository"
	"github.com/HenokhIS/You-Do/internal/timeformat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEventEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}))
	database.SetDB(db)

	handler := NewEventHandler(repository.NewEventRepository(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/events", handler.Create)
	r.GET("/events", handler.List)
	r.GET("/events/:id", handler.Get)
	r.PUT("/events/:id", handler.Update)
	r.DELETE("/events/:id", handler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r, db
}

func TestEventHandler_CreateAcceptsDatetimeLocalLayout(t *testing.T) {
	r, db := setupEventEnv(t)

	w := postJSON(t, r, "/events", map[string]interface{}{
		"user_id": 1,
		"judul":   "Rapat proyek",
		"tanggal": "2024-03-10T14:30",
		"tempat":  "Ruang A",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var event models.Event
	require.NoError(t, db.First(&event).Error)
	expected, err := timeformat.ParseEventCreate("2024-03-10T14:30")
	require.NoError(t, err)
	require.True(t, event.Tanggal.Equal(expected))
}

// The creation path must reject the update layout and vice versa: the two
// endpoints inherited different formats and keep them.
func TestEventHandler_DateLayoutAsymmetry(t *testing.T) {
	r, _ := setupEventEnv(t)

	w := postJSON(t, r, "/events", map[string]interface{}{
		"user_id": 1,
		"judul":   "Rapat proyek",
		"tanggal": "2024-03-10 14:30:00",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid datetime format")

	w = postJSON(t, r, "/events", map[string]interface{}{
		"user_id": 1,
		"judul":   "Rapat proyek",
		"tanggal": "2024-03-10T14:30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodPut, "/events/1", jsonBody(t, map[string]interface{}{
		"tanggal": "2024-03-11T09:00",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/events/1", jsonBody(t, map[string]interface{}{
		"tanggal": "2024-03-11 09:00:00",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestEventHandler_PartialUpdate(t *testing.T) {
	r, db := setupEventEnv(t)

	w := postJSON(t, r, "/events", map[string]interface{}{
		"user_id":   1,
		"judul":     "Rapat proyek",
		"deskripsi": "Bahas milestone",
		"tanggal":   "2024-03-10T14:30",
		"tempat":    "Ruang A",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodPut, "/events/1", jsonBody(t, map[string]interface{}{
		"tempat": "Ruang B",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var event models.Event
	require.NoError(t, db.First(&event).Error)
	require.Equal(t, "Ruang B", event.Tempat)
	require.Equal(t, "Rapat proyek", event.Judul)
	require.Equal(t, "Bahas milestone", event.Deskripsi)
}

func TestEventHandler_GetNotFound(t *testing.T) {
	r, _ := setupEventEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/events/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventHandler_ResponseDatesAreISO8601(t *testing.T) {
	r, _ := setupEventEnv(t)

	w := postJSON(t, r, "/events", map[string]interface{}{
		"user_id": 1,
		"judul":   "Rapat proyek",
		"tanggal": "2024-03-10T14:30",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/events/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	raw, ok := payload["tanggal"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, raw)
	require.NoError(t, err)
}
