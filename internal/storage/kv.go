package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Keys for the persisted application blobs.
const (
	KeyTasks            = "tasks"
	KeyUserStats        = "userStats"
	KeyLastResetDate    = "lastResetDate"
	KeyLastReminderDate = "lastReminderDate"
)

// KV is the persistence boundary: a string-keyed store of JSON blobs.
// Get returns ErrNotFound for missing keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
