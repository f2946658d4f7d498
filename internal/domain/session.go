package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Message roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is a single turn in a session history.
type Message struct {
	Role    string
	Content string
}

// Session is a live conversation derived from a ChatConfig.
type Session struct {
	SessionID    string
	ChatConfigID string
	Title        string
	Model        string
	SystemPrompt string
	Temperature  decimal.Decimal
	Messages     []Message
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AppendMessage adds a message to the end of the history.
func (s *Session) AppendMessage(role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

// RecentMessages returns at most n of the latest messages, oldest first.
func (s *Session) RecentMessages(n int) []Message {
	if n <= 0 {
		return nil
	}
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// ApplySettings replaces the session's settings. History, timestamps and the
// config back-reference are left untouched.
func (s *Session) ApplySettings(settings Settings) {
	s.Title = settings.Title
	s.SystemPrompt = settings.SystemPrompt
	s.Model = settings.Model
	s.Temperature = settings.Temperature
}

// Settings returns the session's current settings.
func (s *Session) Settings() Settings {
	return Settings{
		Title:        s.Title,
		SystemPrompt: s.SystemPrompt,
		Model:        s.Model,
		Temperature:  s.Temperature,
	}
}
