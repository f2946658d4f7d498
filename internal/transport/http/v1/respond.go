package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/xiaot623/chatshare/internal/domain"
)

// Access-Control-Allow-Methods values per route.
const (
	creatorMethods    = "POST,OPTIONS"
	readerMethods     = "GET,OPTIONS"
	updaterMethods    = "PUT,POST,OPTIONS"
	configItemMethods = "GET,PUT,POST,OPTIONS"
)

var errInvalidTemperature = errors.New("temperature must be a number")

// setCORS sets the CORS headers. An empty methods list only sets the origin.
func setCORS(c echo.Context, methods string) {
	header := c.Response().Header()
	header.Set(echo.HeaderAccessControlAllowOrigin, "*")
	if methods != "" {
		header.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
		header.Set(echo.HeaderAccessControlAllowMethods, methods)
	}
}

// preflight answers OPTIONS requests.
func preflight(methods string) echo.HandlerFunc {
	return func(c echo.Context) error {
		setCORS(c, methods)
		return c.JSON(http.StatusOK, map[string]string{})
	}
}

// bindJSON decodes the request body whatever its Content-Type.
// An empty body leaves v untouched so every field reads as missing.
func bindJSON(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

// parseTemperature reads a JSON number or numeric string exactly.
func parseTemperature(raw json.RawMessage) (decimal.Decimal, error) {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return decimal.Decimal{}, errInvalidTemperature
	}
	return d, nil
}

func missingFields(c echo.Context, missing []string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "Missing required fields",
		"missing": missing,
	})
}

func invalidTemperature(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid temperature"})
}

// respondError maps policy rejections to 400 and everything else to 500.
func respondError(c echo.Context, err error) error {
	var rejected *domain.SettingsRejectedError
	if errors.As(err, &rejected) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":  "Invalid settings",
			"reason": rejected.Reason,
		})
	}
	return internalError(c, err)
}

// internalError logs the cause and hides it from the caller.
func internalError(c echo.Context, err error) error {
	log.Error().
		Err(err).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
