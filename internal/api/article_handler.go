package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /v1/articles/
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.services.Article.List(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ListSubscribed handles GET /v1/articles/subscribed/
func (h *ArticleHandler) ListSubscribed(c *gin.Context) {
	articles, err := h.services.Article.ListSubscribed(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ListPending handles GET /v1/articles/pending/
func (h *ArticleHandler) ListPending(c *gin.Context) {
	articles, err := h.services.Article.ListPending(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get handles GET /v1/articles/:article_id/
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), currentUser(c), c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create handles POST /v1/articles/
func (h *ArticleHandler) Create(c *gin.Context) {
	var input service.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), currentUser(c), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update handles PUT /v1/articles/:article_id/
func (h *ArticleHandler) Update(c *gin.Context) {
	var input service.ArticleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Update(c.Request.Context(), currentUser(c), c.Param("article_id"), &input)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /v1/articles/:article_id/
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), currentUser(c), c.Param("article_id")); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Approve handles POST /v1/articles/:article_id/approve/
func (h *ArticleHandler) Approve(c *gin.Context) {
	article, err := h.services.Article.Approve(c.Request.Context(), currentUser(c), c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, article)
}
