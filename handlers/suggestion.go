package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookwell/middleware"
	"bookwell/models"
	"bookwell/services/suggestion"
)

// Suggestion sessions are short-lived; a confirm call must arrive within
// this window or request fresh suggestions.
const suggestionSessionTTL = 10 * time.Minute

const suggestionSessionPrefix = "suggestion:session:"

// SuggestionHandler exposes the slot-suggestion endpoints.
type SuggestionHandler struct {
	Service suggestion.SuggestionService
	Cache   *redis.Client
}

func NewSuggestionHandler(svc suggestion.SuggestionService, cache *redis.Client) *SuggestionHandler {
	return &SuggestionHandler{Service: svc, Cache: cache}
}

// GenerateSuggestions computes candidate slots for the authenticated
// consumer and caches them in a session so ConfirmFromSession can later
// reference one by session ID.
func (h *SuggestionHandler) GenerateSuggestions(c *gin.Context) {
	consumerID := c.GetString(middleware.CtxConsumerID)
	var input struct {
		ServiceID   string `json:"serviceId" binding:"required"`
		TargetCount int    `json:"targetCount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	candidates, err := h.Service.GenerateSuggestions(ctx, consumerID, input.ServiceID, input.TargetCount)
	if err != nil {
		if errors.Is(err, suggestion.ErrExternalServiceUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestion service unavailable, try again later"})
			return
		}
		getLogger(c).Error("failed to generate suggestions", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	session := models.SuggestionSession{
		SessionID:  uuid.New().String(),
		ConsumerID: consumerID,
		ServiceID:  input.ServiceID,
		Candidates: candidates,
		CreatedAt:  time.Now(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode session"})
		return
	}
	if err := h.Cache.Set(ctx, suggestionSessionPrefix+session.SessionID, data, suggestionSessionTTL).Err(); err != nil {
		getLogger(c).Error("failed to cache suggestion session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId":   session.SessionID,
		"suggestions": candidates,
	})
}

// GetSession returns a cached suggestion session, scoped to its owner.
func (h *SuggestionHandler) GetSession(c *gin.Context) {
	consumerID := c.GetString(middleware.CtxConsumerID)
	session, err := h.loadSession(c, c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "suggestion session not found or expired"})
		return
	}
	if session.ConsumerID != consumerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "session belongs to a different consumer"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SuggestionHandler) loadSession(c *gin.Context, sessionID string) (*models.SuggestionSession, error) {
	data, err := h.Cache.Get(c.Request.Context(), suggestionSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session models.SuggestionSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}
