package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatshare/internal/domain"
)

// CreateSessionRequest is the request to start a session from a config.
type CreateSessionRequest struct {
	ChatConfigID *string `json:"chat_config_id"`
}

// SessionSettingsRequest is the body of a session settings update.
type SessionSettingsRequest struct {
	Title        *string          `json:"title"`
	SystemPrompt *string          `json:"system_prompt"`
	Model        *string          `json:"model"`
	Temperature  *json.RawMessage `json:"temperature"`
}

func (r *SessionSettingsRequest) missing() []string {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.SystemPrompt == nil {
		missing = append(missing, "system_prompt")
	}
	if r.Model == nil {
		missing = append(missing, "model")
	}
	if r.Temperature == nil {
		missing = append(missing, "temperature")
	}
	return missing
}

// SessionConfigs is the settings subset returned after an update.
type SessionConfigs struct {
	SessionID    string  `json:"session_id"`
	Title        string  `json:"title"`
	SystemPrompt string  `json:"system_prompt"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
}

// CreateSession starts a session from a config.
// POST /sessions
func (h *Handler) CreateSession(c echo.Context) error {
	setCORS(c, creatorMethods)
	ctx := c.Request().Context()

	var req CreateSessionRequest
	if err := bindJSON(c, &req); err != nil {
		return internalError(c, err)
	}
	if req.ChatConfigID == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "chat_config_id is required"})
	}

	session, err := h.service.CreateSession(ctx, *req.ChatConfigID)
	if errors.Is(err, domain.ErrChatConfigNotFound) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Chat config not found"})
	}
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"sessionId": session.SessionID,
		"createdAt": domain.FormatTimestamp(session.CreatedAt),
	})
}

// UpdateSessionSettings replaces a session's settings.
// PUT|POST /sessions/:session_id/settings
func (h *Handler) UpdateSessionSettings(c echo.Context) error {
	setCORS(c, updaterMethods)
	ctx := c.Request().Context()

	var req SessionSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		return internalError(c, err)
	}
	if missing := req.missing(); len(missing) > 0 {
		return missingFields(c, missing)
	}
	temperature, err := parseTemperature(*req.Temperature)
	if err != nil {
		return invalidTemperature(c)
	}

	session, err := h.service.UpdateSessionSettings(ctx, c.Param("session_id"), domain.Settings{
		Title:        *req.Title,
		SystemPrompt: *req.SystemPrompt,
		Model:        *req.Model,
		Temperature:  temperature,
	})
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Chat config not found"})
	}
	if err != nil {
		return respondError(c, err)
	}

	temp, _ := session.Temperature.Float64()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Chat config updated successfully",
		"session_configs": SessionConfigs{
			SessionID:    session.SessionID,
			Title:        session.Title,
			SystemPrompt: session.SystemPrompt,
			Model:        session.Model,
			Temperature:  temp,
		},
	})
}
