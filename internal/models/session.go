package models

import "time"

// RefreshSession is the server-side refresh credential created on every
// sign-up/sign-in. Its ID is the opaque refresh token handed to the
// client. UserID and Email together form the claim payload embedded in
// access tokens minted from this session.
type RefreshSession struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"` // UUID
	UserID    string    `gorm:"index;size:36;not null" json:"userID"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	IssuedAt  time.Time `gorm:"not null" json:"issuedAt"`
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
