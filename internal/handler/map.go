package handler

import (
	"context"
	"net/http"

	"tripplanner-api/internal/mapview"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MapHandler serves the map catalogue and per-session layers
type MapHandler struct {
	service MapService
}

// MapService interface for dependency injection
type MapService interface {
	Catalog() mapview.Catalog
	State(ctx context.Context, session string) (*service.MapState, error)
}

// NewMapHandler creates a new map handler
func NewMapHandler(svc MapService) *MapHandler {
	return &MapHandler{service: svc}
}

// RegisterRoutes registers the map routes.
func (h *MapHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/map/layers", h.Catalog)
	r.GET("/api/sessions/:session/map", h.State)
}

// Catalog godoc
// @Summary      Basemaps, overlays and the initial view
// @Tags         map
// @Produce      json
// @Success      200 {object}  mapview.Catalog
// @Router       /map/layers [get]
func (h *MapHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Catalog())
}

// State godoc
// @Summary      Current layers of a session's map
// @Tags         map
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Success      200     {object}  service.MapState
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/map [get]
func (h *MapHandler) State(c *gin.Context) {
	state, err := h.service.State(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
