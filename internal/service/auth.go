package service

import (
	"time"

	"todo-vault/internal/apperr"
	"todo-vault/internal/models"
	"todo-vault/internal/repository"
	"todo-vault/internal/token"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	minPasswordLen = 6
	bcryptCost     = 12
)

// AuthService orchestrates sign-up, sign-in, access-token renewal,
// password change and session revocation.
type AuthService struct {
	Users    *repository.UserRepository
	Sessions *repository.SessionStore
	Codec    *token.Codec
	TokenTTL time.Duration
}

func NewAuthService(db *gorm.DB, codec *token.Codec, ttlSeconds int) *AuthService {
	if ttlSeconds <= 0 {
		ttlSeconds = 120
	}
	return &AuthService{
		Users:    repository.NewUserRepository(db),
		Sessions: repository.NewSessionStore(db),
		Codec:    codec,
		TokenTTL: time.Duration(ttlSeconds) * time.Second,
	}
}

// Credentials is what a successful sign-up/sign-in hands to the client.
type Credentials struct {
	UserID           string
	Email            string
	ExpiresInSeconds int
	AccessToken      string
	RefreshToken     string
}

// AccessGrant is a freshly minted access token.
type AccessGrant struct {
	AccessToken      string
	ExpiresInSeconds int
}

// SignUp registers a new account and opens its first refresh session.
func (s *AuthService) SignUp(email, password string) (*Credentials, error) {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return nil, apperr.ErrInvalidEmail
	}

	if _, err := s.Users.FindByEmail(email); err == nil {
		return nil, apperr.ErrEmailTaken
	} else if err != apperr.ErrEmailNotFound {
		return nil, err
	}

	if len(password) < minPasswordLen {
		return nil, apperr.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.ErrStorage
	}

	user, err := s.Users.Create(email, string(hash))
	if err != nil {
		return nil, err
	}

	return s.issue(user.ID, user.Email)
}

// SignIn authenticates an existing account and opens a new refresh
// session; earlier sessions stay valid (multi-session).
func (s *AuthService) SignIn(email, password string) (*Credentials, error) {
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	// syntactic gate applied before the credential check, mirroring sign-up
	if len(password) < minPasswordLen {
		return nil, apperr.ErrWeakPassword
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrWrongPassword
	}

	return s.issue(user.ID, user.Email)
}

// issue opens a refresh session and mints the first access token for it.
func (s *AuthService) issue(userID, email string) (*Credentials, error) {
	session, err := s.Sessions.Create(userID, email)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.Codec.Mint(token.Identity{UserID: userID, Email: email}, s.TokenTTL)
	if err != nil {
		return nil, apperr.ErrStorage
	}

	return &Credentials{
		UserID:           userID,
		Email:            email,
		ExpiresInSeconds: int(s.TokenTTL.Seconds()),
		AccessToken:      accessToken,
		RefreshToken:     session.ID,
	}, nil
}

// RenewAccessToken re-mints an access token from the claim payload
// stored in the session. The password is not re-verified and the
// session's IssuedAt is left untouched.
func (s *AuthService) RenewAccessToken(sessionID string) (*AccessGrant, error) {
	session, err := s.Sessions.Get(sessionID)
	if err != nil {
		if err == apperr.ErrNotFound {
			return nil, apperr.ErrInvalidSession
		}
		return nil, err
	}

	accessToken, err := s.Codec.Mint(token.Identity{UserID: session.UserID, Email: session.Email}, s.TokenTTL)
	if err != nil {
		return nil, apperr.ErrStorage
	}

	return &AccessGrant{
		AccessToken:      accessToken,
		ExpiresInSeconds: int(s.TokenTTL.Seconds()),
	}, nil
}

// GetSession surfaces a refresh session for inspection.
func (s *AuthService) GetSession(sessionID string) (*models.RefreshSession, error) {
	return s.Sessions.Get(sessionID)
}

// DeleteSession revokes one refresh session. Already-minted access
// tokens stay valid until their own expiry; revocation works by
// denying renewal.
func (s *AuthService) DeleteSession(sessionID string) error {
	return s.Sessions.DeleteOne(sessionID)
}

// ChangePassword re-hashes the password and revokes every refresh
// session of the caller except retainedSessionID.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword, retainedSessionID string) error {
	if len(currentPassword) < minPasswordLen || len(newPassword) < minPasswordLen {
		return apperr.ErrWeakPassword
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperr.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.ErrStorage
	}

	if err := s.Users.UpdatePasswordHash(user.ID, string(hash)); err != nil {
		return err
	}

	// log out everywhere else; not atomic with the update above, a
	// crash in between leaves old sessions alive until next change
	if _, err := s.Sessions.DeleteMany(user.ID, retainedSessionID); err != nil {
		return err
	}
	return nil
}
