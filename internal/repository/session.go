package repository

import (
	"errors"
	"time"

	"todo-vault/internal/apperr"
	"todo-vault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionStore persists refresh sessions, one per sign-up/sign-in.
type SessionStore struct {
	DB *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{DB: db}
}

// Create persists a new refresh session carrying the claim payload
// that future access tokens will be minted from.
func (s *SessionStore) Create(userID, email string) (*models.RefreshSession, error) {
	session := models.RefreshSession{
		ID:       uuid.NewString(),
		UserID:   userID,
		Email:    email,
		IssuedAt: time.Now(),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	return &session, nil
}

func (s *SessionStore) Get(id string) (*models.RefreshSession, error) {
	var session models.RefreshSession
	if err := s.DB.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.ErrStorage
	}
	return &session, nil
}

// DeleteOne removes a single session. Deleting an unknown id reports
// NotFound rather than being silently ignored.
func (s *SessionStore) DeleteOne(id string) error {
	res := s.DB.Delete(&models.RefreshSession{}, "id = ?", id)
	if res.Error != nil {
		return apperr.ErrStorage
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DeleteMany removes every session belonging to userID except excludeID
// ("log out everywhere else") and returns the number of deleted rows.
func (s *SessionStore) DeleteMany(userID, excludeID string) (int64, error) {
	res := s.DB.Delete(&models.RefreshSession{}, "user_id = ? AND id <> ?", userID, excludeID)
	if res.Error != nil {
		return 0, apperr.ErrStorage
	}
	return res.RowsAffected, nil
}
