package handler

import (
	"context"
	"net/http"
	"strconv"

	"tripplanner-api/internal/itinerary"
	"tripplanner-api/internal/models"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
	geojson "github.com/paulmach/go.geojson"
)

// DirectionsHandler serves the directions sidebar and the itinerary list
type DirectionsHandler struct {
	service DirectionsService
}

// DirectionsService interface for dependency injection
type DirectionsService interface {
	PlanTrip(ctx context.Context, session string, in service.DirectionsInput) (*service.DirectionsResult, error)
	Restore(ctx context.Context, session string) (*service.RestoreResult, error)
	ClearDirections(ctx context.Context, session string) error
	MoveOriginDestination(ctx context.Context, session, key string, lat, lon float64) (*service.DirectionsResult, error)
	SetDestination(ctx context.Context, session string, destinationID int) (*service.DirectionsResult, error)
	SelectLocation(ctx context.Context, session, key string, loc models.Location) (*service.DirectionsResult, error)
	ClearLocation(ctx context.Context, session, key string) error
	SelectItinerary(ctx context.Context, session string, id int) (*service.ItineraryDetail, error)
	HoverItinerary(ctx context.Context, session string, id int) (*geojson.FeatureCollection, error)
	BackToItineraries(ctx context.Context, session string) ([]itinerary.Summary, *geojson.FeatureCollection, error)
	Itineraries(ctx context.Context, session string) ([]models.Itinerary, error)
}

// NewDirectionsHandler creates a new directions handler
func NewDirectionsHandler(svc DirectionsService) *DirectionsHandler {
	return &DirectionsHandler{service: svc}
}

// MoveRequest is an origin or destination marker dropped at a new point.
type MoveRequest struct {
	Key string   `json:"key" binding:"required,oneof=origin destination"`
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// DestinationRequest picks a curated destination as the trip destination.
type DestinationRequest struct {
	ID int `json:"id" binding:"required,min=1"`
}

// ItineraryListResponse is the itinerary list after leaving an itinerary's directions.
type ItineraryListResponse struct {
	Itineraries []itinerary.Summary        `json:"itineraries"`
	Layers      *geojson.FeatureCollection `json:"layers" swaggertype:"object"`
}

// RegisterRoutes registers the directions and itinerary routes.
func (h *DirectionsHandler) RegisterRoutes(r *gin.RouterGroup) {
	s := r.Group("/api/sessions/:session")
	{
		s.POST("/directions", h.PlanTrip)
		s.GET("/directions", h.Restore)
		s.DELETE("/directions", h.ClearDirections)
		s.POST("/directions/move", h.MoveOriginDestination)
		s.POST("/directions/destination", h.SetDestination)
		s.PUT("/directions/:key", h.SelectLocation)
		s.DELETE("/directions/:key", h.ClearLocation)

		s.GET("/itineraries", h.Itineraries)
		s.GET("/itineraries.html", h.ItinerariesHTML)
		s.POST("/itineraries/back", h.BackToItineraries)
		s.POST("/itineraries/:id/select", h.SelectItinerary)
		s.POST("/itineraries/:id/hover", h.HoverItinerary)
	}
}

// PlanTrip godoc
// @Summary      Plan a trip
// @Description  Stores the given endpoints and options, then plans between the session's origin and destination
// @Tags         directions
// @Accept       json
// @Produce      json
// @Param        session path      string                    true  "session ID"
// @Param        input   body      service.DirectionsInput   true  "directions form"
// @Success      200     {object}  service.DirectionsResult
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse
// @Failure      422     {object}  ErrorResponse
// @Failure      502     {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions [post]
func (h *DirectionsHandler) PlanTrip(c *gin.Context) {
	var in service.DirectionsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.PlanTrip(c.Request.Context(), c.Param("session"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Restore godoc
// @Summary      Restore the directions view
// @Description  Plans the stored trip again when the session was last showing directions
// @Tags         directions
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Success      200     {object}  service.RestoreResult
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions [get]
func (h *DirectionsHandler) Restore(c *gin.Context) {
	result, err := h.service.Restore(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClearDirections godoc
// @Summary      Clear the directions from the map
// @Tags         directions
// @Param        session path  string  true  "session ID"
// @Success      204
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions [delete]
func (h *DirectionsHandler) ClearDirections(c *gin.Context) {
	if err := h.service.ClearDirections(c.Request.Context(), c.Param("session")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MoveOriginDestination godoc
// @Summary      Move the origin or destination marker
// @Tags         directions
// @Accept       json
// @Produce      json
// @Param        session path      string       true  "session ID"
// @Param        move    body      MoveRequest  true  "new marker position"
// @Success      200     {object}  service.DirectionsResult
// @Failure      400     {object}  ErrorResponse
// @Failure      502     {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions/move [post]
func (h *DirectionsHandler) MoveOriginDestination(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key must be origin or destination, lat and lon are required"})
		return
	}

	result, err := h.service.MoveOriginDestination(c.Request.Context(), c.Param("session"), req.Key, *req.Lat, *req.Lon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetDestination godoc
// @Summary      Get directions to a destination
// @Tags         directions
// @Accept       json
// @Produce      json
// @Param        session     path      string              true  "session ID"
// @Param        destination body      DestinationRequest  true  "destination"
// @Success      200         {object}  service.DirectionsResult
// @Failure      404         {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions/destination [post]
func (h *DirectionsHandler) SetDestination(c *gin.Context) {
	var req DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a positive destination id is required"})
		return
	}

	result, err := h.service.SetDestination(c.Request.Context(), c.Param("session"), req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SelectLocation godoc
// @Summary      Set origin or destination from the typeahead
// @Tags         directions
// @Accept       json
// @Produce      json
// @Param        session  path      string           true  "session ID"
// @Param        key      path      string           true  "origin or destination"
// @Param        location body      models.Location  true  "selected location"
// @Success      200      {object}  service.DirectionsResult
// @Failure      400      {object}  ErrorResponse
// @Failure      422      {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions/{key} [put]
func (h *DirectionsHandler) SelectLocation(c *gin.Context) {
	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.SelectLocation(c.Request.Context(), c.Param("session"), c.Param("key"), loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ClearLocation godoc
// @Summary      Clear origin or destination
// @Tags         directions
// @Param        session path  string  true  "session ID"
// @Param        key     path  string  true  "origin or destination"
// @Success      204
// @Failure      400     {object}  ErrorResponse
// @Router       /api/sessions/{session}/directions/{key} [delete]
func (h *DirectionsHandler) ClearLocation(c *gin.Context) {
	if err := h.service.ClearLocation(c.Request.Context(), c.Param("session"), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Itineraries godoc
// @Summary      Itineraries on the session's map
// @Tags         itineraries
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Success      200     {array}   models.Itinerary
// @Router       /api/sessions/{session}/itineraries [get]
func (h *DirectionsHandler) Itineraries(c *gin.Context) {
	list, err := h.service.Itineraries(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ItinerariesHTML godoc
// @Summary      Itinerary list as an HTML fragment
// @Tags         itineraries
// @Produce      html
// @Param        session path  string  true  "session ID"
// @Success      200     {string}  string
// @Router       /api/sessions/{session}/itineraries.html [get]
func (h *DirectionsHandler) ItinerariesHTML(c *gin.Context) {
	list, err := h.service.Itineraries(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := itinerary.RenderList(list)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// SelectItinerary godoc
// @Summary      Show one itinerary's directions
// @Tags         itineraries
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Param        id      path      int     true  "itinerary ID"
// @Success      200     {object}  service.ItineraryDetail
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/itineraries/{id}/select [post]
func (h *DirectionsHandler) SelectItinerary(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}

	detail, err := h.service.SelectItinerary(c.Request.Context(), c.Param("session"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// HoverItinerary godoc
// @Summary      Highlight an itinerary
// @Tags         itineraries
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Param        id      path      int     true  "itinerary ID"
// @Success      200     {object}  object
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/itineraries/{id}/hover [post]
func (h *DirectionsHandler) HoverItinerary(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}

	layers, err := h.service.HoverItinerary(c.Request.Context(), c.Param("session"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, layers)
}

// BackToItineraries godoc
// @Summary      Return to the itinerary list
// @Tags         itineraries
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Success      200     {object}  ItineraryListResponse
// @Router       /api/sessions/{session}/itineraries/back [post]
func (h *DirectionsHandler) BackToItineraries(c *gin.Context) {
	list, layers, err := h.service.BackToItineraries(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ItineraryListResponse{Itineraries: list, Layers: layers})
}

func itineraryID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itinerary id"})
		return 0, false
	}
	return id, true
}
