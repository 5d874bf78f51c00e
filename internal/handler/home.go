package handler

import (
	"context"
	"net/http"

	"tripplanner-api/internal/models"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing page data
type HomeHandler struct {
	service HomeService
}

// HomeService interface for dependency injection
type HomeService interface {
	SearchDestinations(context.Context, string) ([]models.Destination, error)
	Featured(context.Context) ([]models.Destination, error)
	Articles(context.Context) ([]models.Article, error)
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(svc HomeService) *HomeHandler {
	return &HomeHandler{service: svc}
}

// RegisterRoutes registers the destination and article routes.
func (h *HomeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/api/destinations/search", h.SearchDestinations)
	r.GET("/api/destinations/featured", h.Featured)
	r.GET("/api/articles", h.Articles)
}

// SearchDestinations godoc
// @Summary      Search destinations
// @Description  Full-text search over published destinations, for the destination typeahead
// @Tags         home
// @Produce      json
// @Param        q   query     string  true  "search text"
// @Success      200 {array}   models.Destination
// @Failure      400 {object}  ErrorResponse
// @Router       /api/destinations/search [get]
func (h *HomeHandler) SearchDestinations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	destinations, err := h.service.SearchDestinations(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, destinations)
}

// Featured godoc
// @Summary      Featured destinations
// @Tags         home
// @Produce      json
// @Success      200 {array}   models.Destination
// @Router       /api/destinations/featured [get]
func (h *HomeHandler) Featured(c *gin.Context) {
	destinations, err := h.service.Featured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, destinations)
}

// Articles godoc
// @Summary      Recent articles
// @Tags         home
// @Produce      json
// @Success      200 {array}   models.Article
// @Router       /api/articles [get]
func (h *HomeHandler) Articles(c *gin.Context) {
	articles, err := h.service.Articles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}
