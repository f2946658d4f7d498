package domain

import "github.com/shopspring/decimal"

// Defaults applied to stored session records that lack a field.
const (
	DefaultSystemPrompt = "You are a helpful assistant."
	DefaultModel        = "gemini-2.5-flash-lite"
	DefaultSessionTitle = "New Session"
	DefaultChatConfigID = "default"
	DefaultTemperature  = "0.7"

	// DefaultNewSessionTitle is the title of a stored config that has no title key.
	DefaultNewSessionTitle = "New Chat Session"
)

// DefaultTemperatureValue is DefaultTemperature as a decimal.
var DefaultTemperatureValue = decimal.RequireFromString(DefaultTemperature)
