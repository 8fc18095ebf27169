package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// PublisherHandler handles publisher endpoints
type PublisherHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPublisherHandler creates a new PublisherHandler
func NewPublisherHandler(services *service.Services, log zerolog.Logger) *PublisherHandler {
	return &PublisherHandler{
		services: services,
		log:      log.With().Str("handler", "publisher").Logger(),
	}
}

// List handles GET /v1/publishers/
func (h *PublisherHandler) List(c *gin.Context) {
	publishers, err := h.services.Publisher.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, publishers)
}

// Get handles GET /v1/publishers/:publisher_id/
func (h *PublisherHandler) Get(c *gin.Context) {
	publisher, err := h.services.Publisher.Get(c.Request.Context(), c.Param("publisher_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, publisher)
}
