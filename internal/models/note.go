package models

import "time"

// Note is the "catatan" entity: free-form text owned by a user.
type Note struct {
	ID        uint64    `gorm:"primarykey;column:catatan_id" json:"catatan_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Catatan   string    `gorm:"type:text;not null" json:"catatan"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Note) TableName() string {
	return "catatan"
}
