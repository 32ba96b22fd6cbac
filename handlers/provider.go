package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookwell/middleware"
	"bookwell/models"
	"bookwell/services/provider"
)

// ProviderHandler exposes provider account and schedule endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
}

func NewProviderHandler(svc provider.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

func (h *ProviderHandler) Register(c *gin.Context) {
	var reg models.ProviderRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		getLogger(c).Warn("provider registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProviderHandler) Authenticate(c *gin.Context) {
	var creds models.AuthCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, provider.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("provider signin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) GetProfile(c *gin.Context) {
	id := c.GetString(middleware.CtxProviderID)
	profile, err := h.Service.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	id := c.GetString(middleware.CtxProviderID)
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(c.Request.Context(), id, fields)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProviderHandler) DeleteAccount(c *gin.Context) {
	id := c.GetString(middleware.CtxProviderID)
	if err := h.Service.DeleteAccount(c.Request.Context(), id); err != nil {
		getLogger(c).Error("provider deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ProviderHandler) GetSchedule(c *gin.Context) {
	id := c.GetString(middleware.CtxProviderID)
	rows, err := h.Service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("failed to load schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}
	if rows == nil {
		rows = []models.ScheduleDay{}
	}
	c.JSON(http.StatusOK, gin.H{"weeklySchedule": rows})
}

func (h *ProviderHandler) SetSchedule(c *gin.Context) {
	id := c.GetString(middleware.CtxProviderID)
	var body struct {
		WeeklySchedule []models.ScheduleDay `json:"weeklySchedule" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.Service.SetSchedule(c.Request.Context(), id, body.WeeklySchedule); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
