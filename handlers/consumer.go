package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookwell/middleware"
	"bookwell/models"
	"bookwell/services/consumer"
)

// ConsumerHandler exposes consumer account endpoints.
type ConsumerHandler struct {
	Service consumer.ConsumerService
}

func NewConsumerHandler(svc consumer.ConsumerService) *ConsumerHandler {
	return &ConsumerHandler{Service: svc}
}

func (h *ConsumerHandler) Register(c *gin.Context) {
	var reg models.ConsumerRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), reg)
	if err != nil {
		getLogger(c).Warn("consumer registration failed", zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ConsumerHandler) Authenticate(c *gin.Context) {
	var creds models.AuthCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, consumer.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("consumer signin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ConsumerHandler) GetProfile(c *gin.Context) {
	id := c.GetString(middleware.CtxConsumerID)
	profile, err := h.Service.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ConsumerHandler) UpdateProfile(c *gin.Context) {
	id := c.GetString(middleware.CtxConsumerID)
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

func (h *ConsumerHandler) DeleteAccount(c *gin.Context) {
	id := c.GetString(middleware.CtxConsumerID)
	if err := h.Service.DeleteAccount(c.Request.Context(), id); err != nil {
		getLogger(c).Error("consumer deletion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ConsumerHandler) GetAvailability(c *gin.Context) {
	id := c.GetString(middleware.CtxConsumerID)
	slots, err := h.Service.GetAvailability(c.Request.Context(), id)
	if err != nil {
		getLogger(c).Error("failed to load availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load availability"})
		return
	}
	if slots == nil {
		slots = []models.ConsumerSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"availabilitySlots": slots})
}

func (h *ConsumerHandler) SetAvailability(c *gin.Context) {
	id := c.GetString(middleware.CtxConsumerID)
	var body struct {
		AvailabilitySlots []models.ConsumerSlot `json:"availabilitySlots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.Service.SetAvailability(c.Request.Context(), id, body.AvailabilitySlots); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
