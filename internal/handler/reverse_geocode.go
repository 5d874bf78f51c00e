package handler

import (
	"context"
	"net/http"
	"strconv"

	"tripplanner-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service GeoCodingService
}

// GeoCodingService interface for dependency injection
type GeoCodingService interface {
	ReverseGeocode(context.Context, float64, float64) (*models.Location, error)
	Locate(context.Context, string, float64, float64) (*models.Location, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc GeoCodingService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// PointRequest is a clicked or located map point.
type PointRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lon *float64 `json:"lon" binding:"required"`
}

// LocateResponse is the address found for the user's position, if any.
type LocateResponse struct {
	Marker   [2]float64       `json:"marker"`
	Location *models.Location `json:"location"`
}

// RegisterRoutes registers the reverse geocoding routes.
func (h *ReverseGeocodeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reverse-geocode", h.ReverseGeocode)
	r.POST("/api/sessions/:session/locate", h.Locate)
}

// ReverseGeocode godoc
// @Summary      Reverse geocode a point
// @Tags         geocoding
// @Produce      json
// @Param        lat query     number  true  "latitude"
// @Param        lon query     number  true  "longitude"
// @Success      200 {object}  models.Location
// @Failure      400 {object}  ErrorResponse
// @Failure      404 {object}  ErrorResponse
// @Failure      502 {object}  ErrorResponse
// @Router       /reverse-geocode [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	location, err := h.service.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		respondError(c, err)
		return
	}

	if location == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no address found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, location)
}

// Locate godoc
// @Summary      Mark the user's current location
// @Description  Places the geocode marker on the session's map, looks up the nearest address and stores it as the origin
// @Tags         geocoding
// @Accept       json
// @Produce      json
// @Param        session path      string        true  "session ID"
// @Param        point   body      PointRequest  true  "current position"
// @Success      200     {object}  LocateResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/locate [post]
func (h *ReverseGeocodeHandler) Locate(c *gin.Context) {
	var req PointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	location, err := h.service.Locate(c.Request.Context(), c.Param("session"), *req.Lat, *req.Lon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LocateResponse{Marker: [2]float64{*req.Lat, *req.Lon}, Location: location})
}
