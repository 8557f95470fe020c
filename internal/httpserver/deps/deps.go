package deps

import (
	"context"
	"time"

	"github.com/handl-app/handl/internal/claim"
	"github.com/handl-app/handl/internal/folders"
	"github.com/handl-app/handl/internal/history"
	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/platforms"
	"github.com/handl-app/handl/internal/search"
	"github.com/handl-app/handl/internal/state"
	"github.com/handl-app/handl/internal/suggest"
	"github.com/redis/go-redis/v9"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	RedisClient *redis.Client       // Redis client connection (nil when persistence is disabled)
	Platforms   *platforms.Registry // platform definitions and enabled set
	Folders     *folders.Store      // folder tree owner
	History     *history.Log        // search history owner
	Search      *search.Controller  // search state machine
	Claim       *claim.Workflow     // claim state machine
	Suggest     *suggest.Client     // name suggestion client with local fallback
	Theme       *state.ThemeHolder  // UI theme preference
	Persist     *state.Persister    // write-through persistence (nil when redis is absent)

	// Reset clears persisted state and reinstates first-run defaults.
	Reset func(ctx context.Context) error
}
