package handler

import (
	"net/http"
	"strconv"

	"todo-vault/internal/apperr"
	"todo-vault/internal/models"
	"todo-vault/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler lists the caller's audit trail.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

type auditResp struct {
	Method    string `json:"method"`
	Path      string `json:"path"`
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	CreatedAt string `json:"createdAt"`
}

// List handles GET /api/logs?limit=50.
func (h *LogHandler) List(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var logs []models.AuditLog
	if err := h.DB.Where("user_id = ?", id.UserID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		util.RespondError(c, apperr.ErrStorage)
		return
	}

	resp := make([]auditResp, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, auditResp{
			Method:    l.Method,
			Path:      l.Path,
			IP:        l.IP,
			UserAgent: l.UserAgent,
			CreatedAt: l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	c.JSON(http.StatusOK, resp)
}
