// Package v1 provides HTTP handlers for chat configs and sessions.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatshare/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Chat configs
	e.POST("/chat-configs", h.CreateChatConfig)
	e.OPTIONS("/chat-configs", preflight(creatorMethods))
	e.GET("/chat-configs/:chat_config_id", h.GetChatConfig)
	e.PUT("/chat-configs/:chat_config_id", h.UpdateChatConfig)
	e.POST("/chat-configs/:chat_config_id", h.UpdateChatConfig)
	e.OPTIONS("/chat-configs/:chat_config_id", preflight(configItemMethods))

	// Sessions
	e.POST("/sessions", h.CreateSession)
	e.OPTIONS("/sessions", preflight(creatorMethods))
	e.PUT("/sessions/:session_id/settings", h.UpdateSessionSettings)
	e.POST("/sessions/:session_id/settings", h.UpdateSessionSettings)
	e.OPTIONS("/sessions/:session_id/settings", preflight(updaterMethods))

	// Messages
	e.POST("/messages", h.SendMessage)
	e.OPTIONS("/messages", preflight(creatorMethods))

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	setCORS(c, "")
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
