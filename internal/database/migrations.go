package database

import (
	"fmt"

	"github.com/HenokhIS/You-Do/internal/models"
	"gorm.io/gorm"
)

// AddIndexes creates lookup indexes that AutoMigrate's column tags do not
// cover. Idempotent: existing indexes are skipped.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		{&models.Event{}, "kegiatan", "idx_kegiatan_tanggal", "tanggal"},
		{&models.PersonalTask{}, "personal_tasks", "idx_personal_tasks_due_date", "due_date"},
		{&models.PersonalTask{}, "personal_tasks", "idx_personal_tasks_status", "status"},
		{&models.Review{}, "reviews", "idx_reviews_kegiatan_id", "kegiatan_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
