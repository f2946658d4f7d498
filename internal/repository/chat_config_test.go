package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/chatshare/internal/adapter/objectstore"
	"github.com/xiaot623/chatshare/internal/domain"
)

func newTestChatConfigStore(t *testing.T) (*ChatConfigStore, string) {
	t.Helper()
	dir := t.TempDir()
	objects, err := objectstore.NewFSStore(dir)
	require.NoError(t, err)
	return NewChatConfigStore(objects), dir
}

func TestChatConfigKey(t *testing.T) {
	assert.Equal(t, "chat-configs/abc.json", ChatConfigKey("abc"))
}

func TestChatConfigStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, dir := newTestChatConfigStore(t)

	want := &domain.ChatConfig{
		ChatConfigID: "c1",
		Model:        "gemini-2.5-flash",
		SystemPrompt: "You are a pirate.",
		Temperature:  decimal.RequireFromString("0.9"),
		Title:        "Pirate",
	}
	require.NoError(t, store.PutChatConfig(ctx, want))

	raw, err := os.ReadFile(filepath.Join(dir, "chat-configs", "c1.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"chatConfigId":"c1","model":"gemini-2.5-flash","systemPrompt":"You are a pirate.","temperature":0.9,"title":"Pirate"}`, string(raw))

	got, err := store.GetChatConfig(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ChatConfigID, got.ChatConfigID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.SystemPrompt, got.SystemPrompt)
	assert.Equal(t, want.Model, got.Model)
	assert.True(t, want.Temperature.Equal(got.Temperature))
}

func TestChatConfigStoreMissing(t *testing.T) {
	store, _ := newTestChatConfigStore(t)

	got, err := store.GetChatConfig(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestChatConfigStoreStringTemperature(t *testing.T) {
	store, dir := newTestChatConfigStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chat-configs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat-configs", "legacy.json"),
		[]byte(`{"model":"m","systemPrompt":"p","temperature":"0.5","title":"t"}`), 0o600))

	got, err := store.GetChatConfig(context.Background(), "legacy")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "legacy", got.ChatConfigID)
	assert.Equal(t, "0.5", got.Temperature.String())
}

func TestChatConfigStoreTitleDefault(t *testing.T) {
	store, dir := newTestChatConfigStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chat-configs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat-configs", "untitled.json"),
		[]byte(`{"model":"m","systemPrompt":"p","temperature":0.5}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat-configs", "blank.json"),
		[]byte(`{"model":"m","systemPrompt":"p","temperature":0.5,"title":""}`), 0o600))

	got, err := store.GetChatConfig(context.Background(), "untitled")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.DefaultNewSessionTitle, got.Title)

	got, err = store.GetChatConfig(context.Background(), "blank")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "", got.Title)
}

func TestChatConfigStoreCorrupt(t *testing.T) {
	store, dir := newTestChatConfigStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "chat-configs"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat-configs", "bad.json"), []byte(`{`), 0o600))

	_, err := store.GetChatConfig(context.Background(), "bad")
	assert.Error(t, err)
}
