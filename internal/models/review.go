package models

import "time"

// Review rates an event. KegiatanID is stored as plain data with no foreign
// key constraint, mirroring the upstream schema.
type Review struct {
	ID            uint64    `gorm:"primarykey;column:review_id" json:"review_id"`
	UserID        uint64    `gorm:"not null;index" json:"user_id"`
	KegiatanID    uint64    `gorm:"not null" json:"kegiatan_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Komentar      string    `gorm:"type:text" json:"komentar"`
	TanggalReview time.Time `gorm:"not null" json:"tanggal_review"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

const (
	// Rating bounds. Upstream never validated these; here a review outside
	// the range is rejected with a 400.
	MinRating = 1
	MaxRating = 5
)
