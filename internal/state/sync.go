package state

import (
	"context"
	"fmt"

	"github.com/handl-app/handl/internal/folders"
	"github.com/handl-app/handl/internal/history"
	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/platforms"
	redisstore "github.com/handl-app/handl/internal/store/redis"
)

// Syncer loads persisted state from Redis into the in-memory owners on
// startup. Missing keys leave the first-run defaults in place.
type Syncer struct {
	store    *redisstore.Store
	folders  *folders.Store
	history  *history.Log
	registry *platforms.Registry
	theme    *ThemeHolder
	logger   logger.Logger
}

// NewSyncer creates a startup syncer.
func NewSyncer(
	store *redisstore.Store,
	fs *folders.Store,
	hist *history.Log,
	registry *platforms.Registry,
	theme *ThemeHolder,
	log logger.Logger,
) *Syncer {
	return &Syncer{
		store:    store,
		folders:  fs,
		history:  hist,
		registry: registry,
		theme:    theme,
		logger:   log,
	}
}

// Sync loads every persisted state envelope. Failing to read one envelope
// aborts the sync so the caller can decide whether to run on defaults.
func (s *Syncer) Sync(ctx context.Context) error {
	persisted, ok, err := s.store.LoadFolders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load folders: %w", err)
	}
	if ok {
		s.folders.Restore(persisted)
		s.logger.Info("folders restored from redis",
			logger.Int("count", len(persisted)))
	}

	items, ok, err := s.store.LoadHistory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if ok {
		s.history.Restore(items)
		s.logger.Info("history restored from redis",
			logger.Int("count", len(items)))
	}

	ids, ok, err := s.store.LoadEnabledPlatforms(ctx)
	if err != nil {
		return fmt.Errorf("failed to load enabled platforms: %w", err)
	}
	if ok {
		s.registry.SetEnabled(ids)
		s.logger.Info("enabled platforms restored from redis",
			logger.Int("count", len(ids)))
	}

	theme, ok, err := s.store.LoadTheme(ctx)
	if err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	}
	if ok && !s.theme.Set(theme) {
		s.logger.Warn("ignoring invalid persisted theme",
			logger.String("theme", string(theme)))
	}

	return nil
}
