// Package domain defines the core domain models for chatshare.
package domain

import "github.com/shopspring/decimal"

// ChatConfig is a reusable chat template that can be shared by link.
type ChatConfig struct {
	ChatConfigID string
	Model        string
	SystemPrompt string
	Temperature  decimal.Decimal
	Title        string
}

// Settings returns the generation settings carried by the config.
func (c *ChatConfig) Settings() Settings {
	return Settings{
		Title:        c.Title,
		SystemPrompt: c.SystemPrompt,
		Model:        c.Model,
		Temperature:  c.Temperature,
	}
}

// Settings are the display and generation fields shared by configs and sessions.
type Settings struct {
	Title        string
	SystemPrompt string
	Model        string
	Temperature  decimal.Decimal
}
