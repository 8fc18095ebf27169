package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// NewsletterHandler handles newsletter endpoints
type NewsletterHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(services *service.Services, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		services: services,
		log:      log.With().Str("handler", "newsletter").Logger(),
	}
}

// List handles GET /v1/newsletters/
func (h *NewsletterHandler) List(c *gin.Context) {
	newsletters, err := h.services.Newsletter.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newsletters)
}

// Get handles GET /v1/newsletters/:newsletter_id/
func (h *NewsletterHandler) Get(c *gin.Context) {
	newsletter, err := h.services.Newsletter.Get(c.Request.Context(), currentUser(c), c.Param("newsletter_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// Create handles POST /v1/newsletters/
func (h *NewsletterHandler) Create(c *gin.Context) {
	var input service.NewsletterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	newsletter, err := h.services.Newsletter.Create(c.Request.Context(), currentUser(c), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, newsletter)
}

// Update handles PUT /v1/newsletters/:newsletter_id/
func (h *NewsletterHandler) Update(c *gin.Context) {
	var input service.NewsletterUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	newsletter, err := h.services.Newsletter.Update(c.Request.Context(), currentUser(c), c.Param("newsletter_id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// Delete handles DELETE /v1/newsletters/:newsletter_id/
func (h *NewsletterHandler) Delete(c *gin.Context) {
	if err := h.services.Newsletter.Delete(c.Request.Context(), currentUser(c), c.Param("newsletter_id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
