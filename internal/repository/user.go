package repository

import (
	"errors"
	"strings"

	"todo-vault/internal/apperr"
	"todo-vault/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository owns account rows. Accounts are never deleted here.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
	}
	if err := r.DB.Create(&user).Error; err != nil {
		return nil, apperr.ErrStorage
	}
	return &user, nil
}

// FindByEmail matches emails case-insensitively.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEmailNotFound
		}
		return nil, apperr.ErrStorage
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.ErrStorage
	}
	return &user, nil
}

func (r *UserRepository) UpdatePasswordHash(id, passwordHash string) error {
	if err := r.DB.Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error; err != nil {
		return apperr.ErrStorage
	}
	return nil
}
