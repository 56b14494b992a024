package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMe returns the authenticated identity.
func GetMe(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"_id":   id.UserID,
		"email": id.Email,
	})
}
