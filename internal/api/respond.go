package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newsroom-api/internal/service"
	"github.com/rs/zerolog"
)

// respondError translates the service error taxonomy into the API's status
// codes: 400 with a field->message body, 403 with an error body, 404, 502
// for a failed external collaborator, 500 for everything else.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var fieldErrs service.FieldErrors
	var forbidden *service.ForbiddenError
	var external *service.ExternalServiceError

	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, fieldErrs)
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": forbidden.Reason})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	case errors.As(err, &external):
		log.Error().Err(err).Msg("External service failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": external.Op + " failed"})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
