package helpers

import (
	"testing"

	"github.com/xiaot623/chatshare/internal/adapter/objectstore"
	"github.com/xiaot623/chatshare/internal/repository"
)

func NewTestSQLiteStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()

	s, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create sqlite store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// NewTestObjectStore returns a filesystem object store in a temp directory.
func NewTestObjectStore(t *testing.T) *objectstore.FSStore {
	t.Helper()

	objects, err := objectstore.NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create object store: %v", err)
	}

	return objects
}

// NewTestChatConfigStore returns a config store backed by a temp directory.
func NewTestChatConfigStore(t *testing.T) *repository.ChatConfigStore {
	t.Helper()
	return repository.NewChatConfigStore(NewTestObjectStore(t))
}
