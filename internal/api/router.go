package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/config"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	publisherHandler := NewPublisherHandler(services, log)
	newsletterHandler := NewNewsletterHandler(services, log)
	subscriptionHandler := NewSubscriptionHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires a valid token
		authed := v1.Group("")
		authed.Use(authRequired(services.Auth))
		{
			authed.GET("/roles", rolesHandler(services))

			articles := authed.Group("/articles")
			{
				articles.GET("/", articleHandler.List)
				articles.POST("/", articleHandler.Create)
				articles.GET("/subscribed/", articleHandler.ListSubscribed)
				articles.GET("/pending/", articleHandler.ListPending)
				articles.GET("/:article_id/", articleHandler.Get)
				articles.PUT("/:article_id/", articleHandler.Update)
				articles.DELETE("/:article_id/", articleHandler.Delete)
				articles.POST("/:article_id/approve/", articleHandler.Approve)
			}

			publishers := authed.Group("/publishers")
			{
				publishers.GET("/", publisherHandler.List)
				publishers.GET("/:publisher_id/", publisherHandler.Get)
			}

			newsletters := authed.Group("/newsletters")
			{
				newsletters.GET("/", newsletterHandler.List)
				newsletters.POST("/", newsletterHandler.Create)
				newsletters.GET("/:newsletter_id/", newsletterHandler.Get)
				newsletters.PUT("/:newsletter_id/", newsletterHandler.Update)
				newsletters.DELETE("/:newsletter_id/", newsletterHandler.Delete)
			}

			subscriptions := authed.Group("/subscriptions")
			{
				subscriptions.GET("/", subscriptionHandler.Get)
				subscriptions.PUT("/", subscriptionHandler.Update)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "newsroom-api",
	})
}

// rolesHandler returns the fixed role->permission table
func rolesHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"roles": services.Roles})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
