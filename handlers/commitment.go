package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"bookwell/middleware"
	"bookwell/models"
	"bookwell/services/booking"
)

// ReminderScheduler enqueues appointment reminders for a commitment.
type ReminderScheduler interface {
	ScheduleForCommitment(ctx context.Context, cm *models.Commitment) error
}

// CommitmentHandler exposes the commitment lifecycle endpoints.
type CommitmentHandler struct {
	Service   booking.BookingService
	Cache     *redis.Client
	Reminders ReminderScheduler
}

func NewCommitmentHandler(svc booking.BookingService, cache *redis.Client, reminders ReminderScheduler) *CommitmentHandler {
	return &CommitmentHandler{Service: svc, Cache: cache, Reminders: reminders}
}

// Create books a slot for the authenticated consumer. When a session ID is
// supplied the requested slot must be one of the session's candidates; a
// session-less request books the slot directly.
func (h *CommitmentHandler) Create(c *gin.Context) {
	consumerID := c.GetString(middleware.CtxConsumerID)
	var input struct {
		SessionID string `json:"sessionId"`
		ServiceID string `json:"serviceId" binding:"required"`
		Date      string `json:"date" binding:"required"`
		StartTime string `json:"startTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if input.SessionID != "" {
		if !h.slotInSession(c, input.SessionID, consumerID, input.ServiceID, input.Date, input.StartTime) {
			return
		}
	}

	cm, err := h.Service.ValidateAndCreateCommitment(c.Request.Context(), consumerID, input.ServiceID, input.Date, input.StartTime)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	if h.Reminders != nil {
		if err := h.Reminders.ScheduleForCommitment(c.Request.Context(), cm); err != nil {
			getLogger(c).Warn("failed to schedule reminder", zap.String("commitmentId", cm.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, cm)
}

// slotInSession verifies the requested slot against a cached suggestion
// session. Writes the error response itself and reports success.
func (h *CommitmentHandler) slotInSession(c *gin.Context, sessionID, consumerID, serviceID, date, startTime string) bool {
	suggestions := &SuggestionHandler{Cache: h.Cache}
	session, err := suggestions.loadSession(c, sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "suggestion session not found or expired"})
		return false
	}
	if session.ConsumerID != consumerID || session.ServiceID != serviceID {
		c.JSON(http.StatusForbidden, gin.H{"error": "session does not match this request"})
		return false
	}
	for _, cand := range session.Candidates {
		if cand.Date == date && cand.StartTime == startTime {
			return true
		}
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "requested slot is not among the session's suggestions"})
	return false
}

func (h *CommitmentHandler) Confirm(c *gin.Context) {
	consumerID := c.GetString(middleware.CtxConsumerID)
	cm, err := h.Service.ConfirmCommitment(c.Request.Context(), consumerID, c.Param("id"))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cm)
}

func (h *CommitmentHandler) CancelAsConsumer(c *gin.Context) {
	h.cancel(c, c.GetString(middleware.CtxConsumerID))
}

func (h *CommitmentHandler) CancelAsProvider(c *gin.Context) {
	h.cancel(c, c.GetString(middleware.CtxProviderID))
}

func (h *CommitmentHandler) cancel(c *gin.Context, requesterID string) {
	if err := h.Service.CancelCommitment(c.Request.Context(), requesterID, c.Param("id")); err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *CommitmentHandler) ListForConsumer(c *gin.Context) {
	consumerID := c.GetString(middleware.CtxConsumerID)
	list, err := h.Service.ListForConsumer(c.Request.Context(), consumerID)
	if err != nil {
		getLogger(c).Error("failed to list commitments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list commitments"})
		return
	}
	if list == nil {
		list = []models.Commitment{}
	}
	c.JSON(http.StatusOK, gin.H{"commitments": list})
}

func (h *CommitmentHandler) ListForProvider(c *gin.Context) {
	providerID := c.GetString(middleware.CtxProviderID)
	list, err := h.Service.ListForProvider(c.Request.Context(), providerID)
	if err != nil {
		getLogger(c).Error("failed to list commitments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list commitments"})
		return
	}
	if list == nil {
		list = []models.Commitment{}
	}
	c.JSON(http.StatusOK, gin.H{"commitments": list})
}

// writeBookingError maps service errors to HTTP responses with their
// stable codes.
func (h *CommitmentHandler) writeBookingError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		status := http.StatusUnprocessableEntity
		if be == booking.ErrSlotConflict {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": be.Message, "code": be.Code})
		return
	}
	getLogger(c).Error("commitment operation failed", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
