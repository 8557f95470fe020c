// Package redis persists the application state (folders, history, enabled
// platforms, theme) as JSON envelopes in a local Redis instance. The
// in-memory stores stay authoritative; everything here is write-through.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/handl-app/handl/internal/domain"
)

// Store handles Redis operations for the persisted application state.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// SaveFolders persists the folder tree.
func (s *Store) SaveFolders(ctx context.Context, folders []domain.Folder) error {
	return s.saveJSON(ctx, KeyFolders, folders)
}

// LoadFolders retrieves the persisted folder tree. A missing key returns
// (nil, false, nil) so callers keep their defaults.
func (s *Store) LoadFolders(ctx context.Context) ([]domain.Folder, bool, error) {
	var folders []domain.Folder
	ok, err := s.loadJSON(ctx, KeyFolders, &folders)
	return folders, ok, err
}

// SaveHistory persists the search history, newest-first.
func (s *Store) SaveHistory(ctx context.Context, items []domain.HistoryItem) error {
	return s.saveJSON(ctx, KeyHistory, items)
}

// LoadHistory retrieves the persisted search history.
func (s *Store) LoadHistory(ctx context.Context) ([]domain.HistoryItem, bool, error) {
	var items []domain.HistoryItem
	ok, err := s.loadJSON(ctx, KeyHistory, &items)
	return items, ok, err
}

// SaveEnabledPlatforms persists the enabled-platform id list.
func (s *Store) SaveEnabledPlatforms(ctx context.Context, ids []string) error {
	return s.saveJSON(ctx, KeyEnabledPlatforms, ids)
}

// LoadEnabledPlatforms retrieves the persisted enabled-platform id list.
func (s *Store) LoadEnabledPlatforms(ctx context.Context) ([]string, bool, error) {
	var ids []string
	ok, err := s.loadJSON(ctx, KeyEnabledPlatforms, &ids)
	return ids, ok, err
}

// SaveTheme persists the theme preference.
func (s *Store) SaveTheme(ctx context.Context, theme domain.Theme) error {
	if err := s.client.Set(ctx, KeyTheme, string(theme), 0).Err(); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return nil
}

// LoadTheme retrieves the persisted theme preference.
func (s *Store) LoadTheme(ctx context.Context) (domain.Theme, bool, error) {
	val, err := s.client.Get(ctx, KeyTheme).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load theme: %w", err)
	}
	return domain.Theme(val), true, nil
}

// Reset deletes every persisted state key.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, StateKeys...).Err(); err != nil {
		return fmt.Errorf("failed to reset state: %w", err)
	}
	return nil
}

func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// loadJSON unmarshals a key into v. Reports whether the key existed.
func (s *Store) loadJSON(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
