package handler

import (
	"context"
	"net/http"
	"strconv"

	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ExploreHandler serves the explore view
type ExploreHandler struct {
	service ExploreService
}

// ExploreService interface for dependency injection
type ExploreService interface {
	FetchIsochrone(ctx context.Context, session string, in service.ExploreInput) (*service.ExploreResult, error)
	SelectPlace(ctx context.Context, session string, placeID int, mode string, exploreTime int) error
}

// NewExploreHandler creates a new explore handler
func NewExploreHandler(svc ExploreService) *ExploreHandler {
	return &ExploreHandler{service: svc}
}

// SelectPlaceRequest carries the explore options a destination card was opened with.
type SelectPlaceRequest struct {
	Mode        string `json:"mode"`
	ExploreTime int    `json:"exploreTime" binding:"min=0"`
}

// RegisterRoutes registers the explore routes.
func (h *ExploreHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/sessions/:session/explore", h.FetchIsochrone)
	r.POST("/api/sessions/:session/places/:place/select", h.SelectPlace)
}

// FetchIsochrone godoc
// @Summary      Fetch the travelshed
// @Description  Finds the area reachable from the origin within the time budget and the destinations inside it
// @Tags         explore
// @Accept       json
// @Produce      json
// @Param        session path      string                true  "session ID"
// @Param        input   body      service.ExploreInput  false "explore options"
// @Success      200     {object}  service.ExploreResult
// @Failure      400     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse
// @Failure      502     {object}  ErrorResponse
// @Router       /api/sessions/{session}/explore [post]
func (h *ExploreHandler) FetchIsochrone(c *gin.Context) {
	var in service.ExploreInput
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.service.FetchIsochrone(c.Request.Context(), c.Param("session"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SelectPlace godoc
// @Summary      Select a destination in the explore view
// @Tags         explore
// @Accept       json
// @Param        session path  string              true  "session ID"
// @Param        place   path  int                 true  "destination ID"
// @Param        options body  SelectPlaceRequest  false "explore options"
// @Success      204
// @Failure      400     {object}  ErrorResponse
// @Router       /api/sessions/{session}/places/{place}/select [post]
func (h *ExploreHandler) SelectPlace(c *gin.Context) {
	placeID, err := strconv.Atoi(c.Param("place"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place id"})
		return
	}

	var req SelectPlaceRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := h.service.SelectPlace(c.Request.Context(), c.Param("session"), placeID, req.Mode, req.ExploreTime); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
