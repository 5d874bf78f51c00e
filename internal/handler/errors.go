package handler

import (
	"errors"
	"net/http"

	"tripplanner-api/internal/itinerary"
	"tripplanner-api/internal/preferences"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

// respondError maps service errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	var missing *service.MissingInputError
	var failed *service.PlanFailedError

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, preferences.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
	case errors.Is(err, service.ErrDestinationNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "destination not found"})
	case errors.Is(err, service.ErrItineraryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "itinerary not found"})
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "origin and destination are required", Missing: missing.Fields})
	case errors.Is(err, service.ErrStale):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "response superseded by a newer request"})
	case errors.As(err, &failed):
		html, _ := itinerary.RenderError(failed.Message)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: failed.Message, HTML: html})
	case errors.Is(err, service.ErrUpstream):
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("upstream request failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream service unavailable"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
