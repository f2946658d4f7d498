package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatshare/internal/domain"
)

// ChatConfigRequest is the body of config create and update calls.
// Fields are pointers so that absent and null read as missing.
type ChatConfigRequest struct {
	Title        *string          `json:"title"`
	SystemPrompt *string          `json:"systemPrompt"`
	Model        *string          `json:"model"`
	Temperature  *json.RawMessage `json:"temperature"`
}

func (r *ChatConfigRequest) missing() []string {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.SystemPrompt == nil {
		missing = append(missing, "systemPrompt")
	}
	if r.Model == nil {
		missing = append(missing, "model")
	}
	if r.Temperature == nil {
		missing = append(missing, "temperature")
	}
	return missing
}

func (r *ChatConfigRequest) settings() (domain.Settings, error) {
	temperature, err := parseTemperature(*r.Temperature)
	if err != nil {
		return domain.Settings{}, err
	}
	return domain.Settings{
		Title:        *r.Title,
		SystemPrompt: *r.SystemPrompt,
		Model:        *r.Model,
		Temperature:  temperature,
	}, nil
}

// ChatConfigResponse is the API shape of a stored config.
type ChatConfigResponse struct {
	ChatConfigID string      `json:"chatConfigId"`
	Model        string      `json:"model"`
	SystemPrompt string      `json:"systemPrompt"`
	Temperature  json.Number `json:"temperature"`
	Title        string      `json:"title"`
}

func newChatConfigResponse(cfg *domain.ChatConfig) ChatConfigResponse {
	return ChatConfigResponse{
		ChatConfigID: cfg.ChatConfigID,
		Model:        cfg.Model,
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  json.Number(cfg.Temperature.String()),
		Title:        cfg.Title,
	}
}

// CreateChatConfig stores a new config and returns its shareable link.
// POST /chat-configs
func (h *Handler) CreateChatConfig(c echo.Context) error {
	setCORS(c, creatorMethods)
	ctx := c.Request().Context()

	var req ChatConfigRequest
	if err := bindJSON(c, &req); err != nil {
		return internalError(c, err)
	}
	if len(req.missing()) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
	}
	settings, err := req.settings()
	if err != nil {
		return invalidTemperature(c)
	}

	cfg, err := h.service.CreateChatConfig(ctx, settings)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"chatConfigId": cfg.ChatConfigID,
		"shareableUrl": h.service.ShareableURL(cfg.ChatConfigID),
	})
}

// GetChatConfig returns a stored config.
// GET /chat-configs/:chat_config_id
func (h *Handler) GetChatConfig(c echo.Context) error {
	setCORS(c, readerMethods)
	ctx := c.Request().Context()

	cfg, err := h.service.GetChatConfig(ctx, c.Param("chat_config_id"))
	if errors.Is(err, domain.ErrChatConfigNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Chat configuration not found"})
	}
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, newChatConfigResponse(cfg))
}

// UpdateChatConfig overwrites a config.
// PUT|POST /chat-configs/:chat_config_id
func (h *Handler) UpdateChatConfig(c echo.Context) error {
	setCORS(c, updaterMethods)
	ctx := c.Request().Context()

	var req ChatConfigRequest
	if err := bindJSON(c, &req); err != nil {
		return internalError(c, err)
	}
	if missing := req.missing(); len(missing) > 0 {
		return missingFields(c, missing)
	}
	settings, err := req.settings()
	if err != nil {
		return invalidTemperature(c)
	}

	cfg, err := h.service.UpdateChatConfig(ctx, c.Param("chat_config_id"), settings)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, newChatConfigResponse(cfg))
}
