package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatshare/internal/domain"
)

// SendMessageRequest is the request to send a message to a session.
type SendMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// SendMessage sends a user message and returns the model's reply.
// POST /messages
func (h *Handler) SendMessage(c echo.Context) error {
	setCORS(c, "")
	ctx := c.Request().Context()

	var req SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		return internalError(c, err)
	}
	if req.SessionID == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "session_id and message are required"})
	}

	reply, err := h.service.SendMessage(ctx, req.SessionID, req.Message)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Chat not found"})
	}
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": reply})
}
