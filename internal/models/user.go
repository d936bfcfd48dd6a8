package models

import "time"

type User struct {
	ID           uint64    `gorm:"primarykey;column:user_id" json:"user_id"`
	Nama         string    `gorm:"type:varchar(255);not null" json:"nama"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
