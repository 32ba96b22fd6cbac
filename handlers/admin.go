package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	commitmentRepo "bookwell/database/repository/commitment"
)

// AdminHandler exposes the analytics endpoints behind the admin API key.
type AdminHandler struct {
	CommitmentRepo commitmentRepo.CommitmentRepository
}

func NewAdminHandler(repo commitmentRepo.CommitmentRepository) *AdminHandler {
	return &AdminHandler{CommitmentRepo: repo}
}

// CommitmentStats returns commitment counts grouped by status.
func (h *AdminHandler) CommitmentStats(c *gin.Context) {
	counts, err := h.CommitmentRepo.CountByStatus(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to aggregate commitment stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"byStatus": counts})
}

// TopServices returns the most-booked services.
func (h *AdminHandler) TopServices(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	top, err := h.CommitmentRepo.TopServices(c.Request.Context(), limit)
	if err != nil {
		getLogger(c).Error("failed to aggregate top services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	if top == nil {
		top = []commitmentRepo.ServiceCount{}
	}
	c.JSON(http.StatusOK, gin.H{"topServices": top})
}
