package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/streakd/internal/model"
)

// Snapshot is the full persisted application state. Missing keys load
// as defaults so a fresh database starts the app cleanly.
type Snapshot struct {
	Tasks            []model.Task
	UserStats        model.UserStats
	LastResetDate    string
	LastReminderDate string
}

func LoadSnapshot(ctx context.Context, kv KV) (Snapshot, error) {
	snap := Snapshot{
		Tasks:     []model.Task{},
		UserStats: model.DefaultUserStats(),
	}

	if blob, err := kv.Get(ctx, KeyTasks); err == nil {
		if err := json.Unmarshal(blob, &snap.Tasks); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", KeyTasks, err)
		}
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, fmt.Errorf("load %s: %w", KeyTasks, err)
	}

	if blob, err := kv.Get(ctx, KeyUserStats); err == nil {
		if err := json.Unmarshal(blob, &snap.UserStats); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", KeyUserStats, err)
		}
	} else if !errors.Is(err, ErrNotFound) {
		return Snapshot{}, fmt.Errorf("load %s: %w", KeyUserStats, err)
	}

	var err error
	if snap.LastResetDate, err = loadDate(ctx, kv, KeyLastResetDate); err != nil {
		return Snapshot{}, err
	}
	if snap.LastReminderDate, err = loadDate(ctx, kv, KeyLastReminderDate); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func SaveTasks(ctx context.Context, kv KV, tasks []model.Task) error {
	blob, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyTasks, err)
	}
	return kv.Put(ctx, KeyTasks, blob)
}

func SaveUserStats(ctx context.Context, kv KV, stats model.UserStats) error {
	blob, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeyUserStats, err)
	}
	return kv.Put(ctx, KeyUserStats, blob)
}

func SaveDate(ctx context.Context, kv KV, key string, day string) error {
	blob, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, blob)
}

func loadDate(ctx context.Context, kv KV, key string) (string, error) {
	blob, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", key, err)
	}
	var day string
	if err := json.Unmarshal(blob, &day); err != nil {
		return "", fmt.Errorf("decode %s: %w", key, err)
	}
	return day, nil
}
