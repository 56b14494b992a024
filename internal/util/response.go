package util

import (
	"errors"
	"net/http"

	"todo-vault/internal/apperr"

	"github.com/gin-gonic/gin"
)

// statusOf maps a domain error to its HTTP status. This is the only
// place where the error taxonomy meets HTTP.
func statusOf(err error) int {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized),
		errors.Is(err, apperr.ErrInvalidSession):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidEmail),
		errors.Is(err, apperr.ErrEmailTaken),
		errors.Is(err, apperr.ErrEmailNotFound),
		errors.Is(err, apperr.ErrWeakPassword),
		errors.Is(err, apperr.ErrWrongPassword),
		errors.Is(err, apperr.ErrEmptyField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrStorage):
		return http.StatusInternalServerError
	}
	return 0
}

// RespondError writes the structured error body for a domain error.
// Anything outside the taxonomy collapses to 400 with {name, message}.
func RespondError(c *gin.Context, err error) {
	code := apperr.Code(err)
	status := statusOf(err)
	if code == "" || status == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"name":    "Error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(status, gin.H{
		"error": code,
		"errors": []gin.H{
			{"code": code, "message": err.Error()},
		},
	})
}

// AbortError is RespondError for middleware chains.
func AbortError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}
