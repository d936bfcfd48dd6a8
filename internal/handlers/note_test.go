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

func setupNoteEnv(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Note{}))
	database.SetDB(db)

	handler := NewNoteHandler(repository.NewNoteRepository(db))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/notes", handler.Create)
	r.GET("/notes", handler.List)
	r.GET("/notes/:id", handler.Get)
	r.PUT("/notes/:id", handler.Update)
	r.DELETE("/notes/:id", handler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r
}

func TestNoteHandler_RoundTrip(t *testing.T) {
	r := setupNoteEnv(t)

	w := postJSON(t, r, "/notes", map[string]interface{}{
		"user_id": 1,
		"catatan": "Jangan lupa beli kopi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/notes/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	require.Equal(t, "Jangan lupa beli kopi", note.Catatan)
	require.Equal(t, uint64(1), note.UserID)

	req = httptest.NewRequest(http.MethodPut, "/notes/1", jsonBody(t, map[string]interface{}{
		"catatan": "Sudah dibeli",
	}))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	require.Equal(t, "Sudah dibeli", note.Catatan)

	req = httptest.NewRequest(http.MethodDelete, "/notes/1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/notes/1", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteHandler_CreateMissingFields(t *testing.T) {
	r := setupNoteEnv(t)

	w := postJSON(t, r, "/notes", map[string]interface{}{
		"user_id": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
