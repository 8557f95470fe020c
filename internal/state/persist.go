package state

import (
	"context"
	"time"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/logger"
	redisstore "github.com/handl-app/handl/internal/store/redis"
)

// persistTimeout bounds each write-through so a slow Redis never stalls a
// mutation path.
const persistTimeout = 2 * time.Second

// Persister writes state changes through to Redis, best effort: failures are
// logged and swallowed because the in-memory stores stay authoritative.
type Persister struct {
	store  *redisstore.Store
	logger logger.Logger
}

// NewPersister creates a write-through persister.
func NewPersister(store *redisstore.Store, log logger.Logger) *Persister {
	return &Persister{store: store, logger: log}
}

// Folders persists the current folder tree.
func (p *Persister) Folders(folders []domain.Folder) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.store.SaveFolders(ctx, folders); err != nil {
		p.logger.Warn("failed to persist folders", logger.Error(err))
	}
}

// History persists the current history log.
func (p *Persister) History(items []domain.HistoryItem) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.store.SaveHistory(ctx, items); err != nil {
		p.logger.Warn("failed to persist history", logger.Error(err))
	}
}

// EnabledPlatforms persists the enabled-platform id list.
func (p *Persister) EnabledPlatforms(ids []string) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.store.SaveEnabledPlatforms(ctx, ids); err != nil {
		p.logger.Warn("failed to persist enabled platforms", logger.Error(err))
	}
}

// Theme persists the theme preference.
func (p *Persister) Theme(theme domain.Theme) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := p.store.SaveTheme(ctx, theme); err != nil {
		p.logger.Warn("failed to persist theme", logger.Error(err))
	}
}
