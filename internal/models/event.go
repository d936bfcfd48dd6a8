package models

import "time"

// Event is the "kegiatan" entity: a scheduled activity owned by a user.
type Event struct {
	ID        uint64    `gorm:"primarykey;column:kegiatan_id" json:"kegiatan_id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Judul     string    `gorm:"type:varchar(255);not null" json:"judul"`
	Deskripsi string    `gorm:"type:text" json:"deskripsi"`
	Tanggal   time.Time `gorm:"not null" json:"tanggal"`
	Tempat    string    `gorm:"type:varchar(255)" json:"tempat"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Event) TableName() string {
	return "kegiatan"
}
