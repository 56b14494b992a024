package models

import "time"

// User represents application user.
type User struct {
	ID           string `gorm:"primaryKey;size:36"` // UUID
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
