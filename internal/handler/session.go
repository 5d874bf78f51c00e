package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"tripplanner-api/internal/preferences"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles sessions and their stored preferences
type SessionHandler struct {
	service SessionService
}

// SessionService interface for dependency injection
type SessionService interface {
	Create(ctx context.Context) (string, preferences.Settings, error)
	Settings(ctx context.Context, session string) (preferences.Settings, error)
	Preference(ctx context.Context, session, name string) (json.RawMessage, error)
	SetPreference(ctx context.Context, session, name string, value json.RawMessage) error
	ClearPreference(ctx context.Context, session, name string) error
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// SessionResponse is a new session with its starting preferences.
type SessionResponse struct {
	ID       string               `json:"id"`
	Settings preferences.Settings `json:"settings"`
}

// PreferenceResponse is one stored preference. Value is null when the preference has
// neither a value nor a default.
type PreferenceResponse struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value" swaggertype:"object"`
}

// RegisterRoutes registers the session routes.
func (h *SessionHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/sessions", h.Create)

	prefs := r.Group("/api/sessions/:session/preferences")
	{
		prefs.GET("", h.Settings)
		prefs.GET("/:name", h.Preference)
		prefs.PUT("/:name", h.SetPreference)
		prefs.DELETE("/:name", h.ClearPreference)
	}
}

// Create godoc
// @Summary      Start a session
// @Tags         sessions
// @Produce      json
// @Success      201 {object}  SessionResponse
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	id, settings, err := h.service.Create(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{ID: id, Settings: settings})
}

// Settings godoc
// @Summary      All preferences of a session, defaults applied
// @Tags         sessions
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Success      200     {object}  preferences.Settings
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/preferences [get]
func (h *SessionHandler) Settings(c *gin.Context) {
	settings, err := h.service.Settings(c.Request.Context(), c.Param("session"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Preference godoc
// @Summary      Read one preference
// @Tags         sessions
// @Produce      json
// @Param        session path      string  true  "session ID"
// @Param        name    path      string  true  "preference name"
// @Success      200     {object}  PreferenceResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/preferences/{name} [get]
func (h *SessionHandler) Preference(c *gin.Context) {
	name := c.Param("name")
	value, err := h.service.Preference(c.Request.Context(), c.Param("session"), name)
	if err != nil {
		respondError(c, err)
		return
	}
	if value == nil {
		value = json.RawMessage("null")
	}

	c.JSON(http.StatusOK, PreferenceResponse{Name: name, Value: value})
}

// SetPreference godoc
// @Summary      Store one preference
// @Description  The body is the raw JSON value. A JSON null clears the preference.
// @Tags         sessions
// @Accept       json
// @Param        session path      string  true  "session ID"
// @Param        name    path      string  true  "preference name"
// @Param        value   body      object  true  "JSON value"
// @Success      204
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/preferences/{name} [put]
func (h *SessionHandler) SetPreference(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON value"})
		return
	}

	if err := h.service.SetPreference(c.Request.Context(), c.Param("session"), c.Param("name"), body); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearPreference godoc
// @Summary      Clear one preference
// @Tags         sessions
// @Param        session path      string  true  "session ID"
// @Param        name    path      string  true  "preference name"
// @Success      204
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /api/sessions/{session}/preferences/{name} [delete]
func (h *SessionHandler) ClearPreference(c *gin.Context) {
	if err := h.service.ClearPreference(c.Request.Context(), c.Param("session"), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
