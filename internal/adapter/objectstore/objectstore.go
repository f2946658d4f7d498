// Package objectstore provides blob storage backends for JSON documents.
package objectstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no object exists at the requested key.
var ErrNotFound = errors.New("object not found")

// Store defines whole-object reads and writes. Put overwrites atomically.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

var (
	_ Store = (*S3Store)(nil)
	_ Store = (*FSStore)(nil)
)
