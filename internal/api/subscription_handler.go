package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/models"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// SubscriptionHandler handles reader subscription endpoints
type SubscriptionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(services *service.Services, log zerolog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		services: services,
		log:      log.With().Str("handler", "subscription").Logger(),
	}
}

// Get handles GET /v1/subscriptions/
func (h *SubscriptionHandler) Get(c *gin.Context) {
	subs, err := h.services.Subscription.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Update handles PUT /v1/subscriptions/
func (h *SubscriptionHandler) Update(c *gin.Context) {
	var subs models.Subscriptions
	if err := c.ShouldBindJSON(&subs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Subscription.Update(c.Request.Context(), currentUser(c), &subs)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
