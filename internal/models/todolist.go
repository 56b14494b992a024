package models

import "time"

// TodoList is a user-owned list of ordered todo items.
// UserID never changes after creation.
type TodoList struct {
	ID        string `gorm:"primaryKey;size:36"` // UUID
	UserID    string `gorm:"index;size:36;not null"`
	Title     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []TodoItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// TodoItem is one entry of a TodoList. Position keeps the client-visible
// order; items are only addressable through their parent list.
type TodoItem struct {
	ID          string `gorm:"primaryKey;size:36"` // UUID
	ListID      string `gorm:"index;size:36;not null"`
	Text        string `gorm:"size:512;not null"`
	IsCompleted bool   `gorm:"not null"`
	Position    int    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
