package handlers

import (
	"net/http"

	"eventease/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves elevated admin-level operations.
type AdminHandler struct {
	Stats  admin.StatsService
	Logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(stats admin.StatsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Stats: stats, Logger: logger}
}

// GetStats handles GET /api/admin/stats.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.Stats.Collect()
	if err != nil {
		h.Logger.Error("GetStats: failed to collect statistics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to collect statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
