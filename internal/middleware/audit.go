package middleware

import (
	"todo-vault/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records every authenticated request after it completes.
// Failures to write the audit row never fail the request itself.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		id, ok := CurrentIdentity(c)
		if !ok {
			return
		}

		log := models.AuditLog{
			UserID:    id.UserID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&log).Error
	}
}
