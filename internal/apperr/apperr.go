package apperr

import "errors"

// Domain errors returned by services and repositories. Handlers map
// these to HTTP statuses; nothing below this package knows about HTTP.
var (
	ErrInvalidEmail   = errors.New("email is not valid")
	ErrEmailTaken     = errors.New("email is already exists")
	ErrEmailNotFound  = errors.New("email doesn't exist")
	ErrWeakPassword   = errors.New("password must be at least 6 characters")
	ErrWrongPassword  = errors.New("invalid password")
	ErrInvalidSession = errors.New("the refresh token is invalid")
	ErrUnauthorized   = errors.New("access denied")
	ErrForbidden      = errors.New("not allowed")
	ErrNotFound       = errors.New("not found")
	ErrItemNotFound   = errors.New("todo not found")
	ErrEmptyField     = errors.New("field cannot be empty")
	ErrStorage        = errors.New("storage failure")
)

// Code returns the stable wire code for a known domain error, or ""
// when err is not part of the taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return "InvalidEmail"
	case errors.Is(err, ErrEmailTaken):
		return "EmailTaken"
	case errors.Is(err, ErrEmailNotFound):
		return "EmailNotFound"
	case errors.Is(err, ErrWeakPassword):
		return "WeakPassword"
	case errors.Is(err, ErrWrongPassword):
		return "WrongPassword"
	case errors.Is(err, ErrInvalidSession):
		return "InvalidSession"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrForbidden):
		return "Forbidden"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrItemNotFound):
		return "ItemNotFound"
	case errors.Is(err, ErrEmptyField):
		return "EmptyField"
	case errors.Is(err, ErrStorage):
		return "StorageFailure"
	}
	return ""
}
