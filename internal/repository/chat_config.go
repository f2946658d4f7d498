package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xiaot623/chatshare/internal/adapter/objectstore"
	"github.com/xiaot623/chatshare/internal/domain"
)

const chatConfigContentType = "application/json"

// chatConfigRecord is the stored JSON shape of a config (camelCase keys).
// Title is a pointer so that an absent key can be told apart from "".
type chatConfigRecord struct {
	ChatConfigID string       `json:"chatConfigId"`
	Model        string       `json:"model"`
	SystemPrompt string       `json:"systemPrompt"`
	Temperature  exactDecimal `json:"temperature"`
	Title        *string      `json:"title"`
}

// ChatConfigStore keeps chat configs as JSON objects in a blob store.
type ChatConfigStore struct {
	objects objectstore.Store
}

// NewChatConfigStore creates a config store over objects.
func NewChatConfigStore(objects objectstore.Store) *ChatConfigStore {
	return &ChatConfigStore{objects: objects}
}

// ChatConfigKey returns the object key for a config id.
func ChatConfigKey(chatConfigID string) string {
	return "chat-configs/" + chatConfigID + ".json"
}

// GetChatConfig returns nil, nil when no config exists for the id.
// A stored object without a title key reads as domain.DefaultNewSessionTitle.
func (s *ChatConfigStore) GetChatConfig(ctx context.Context, chatConfigID string) (*domain.ChatConfig, error) {
	data, err := s.objects.Get(ctx, ChatConfigKey(chatConfigID))
	if errors.Is(err, objectstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record chatConfigRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode chat config %s: %w", chatConfigID, err)
	}
	if record.ChatConfigID == "" {
		record.ChatConfigID = chatConfigID
	}

	return &domain.ChatConfig{
		ChatConfigID: record.ChatConfigID,
		Model:        record.Model,
		SystemPrompt: record.SystemPrompt,
		Temperature:  record.Temperature.Decimal,
		Title:        stringOr(record.Title, domain.DefaultNewSessionTitle),
	}, nil
}

// PutChatConfig writes the whole config, replacing any previous version.
func (s *ChatConfigStore) PutChatConfig(ctx context.Context, cfg *domain.ChatConfig) error {
	data, err := json.Marshal(chatConfigRecord{
		ChatConfigID: cfg.ChatConfigID,
		Model:        cfg.Model,
		SystemPrompt: cfg.SystemPrompt,
		Temperature:  exactDecimal{cfg.Temperature},
		Title:        &cfg.Title,
	})
	if err != nil {
		return fmt.Errorf("failed to encode chat config %s: %w", cfg.ChatConfigID, err)
	}
	return s.objects.Put(ctx, ChatConfigKey(cfg.ChatConfigID), data, chatConfigContentType)
}
