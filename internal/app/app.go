package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/handl-app/handl/internal/claim"
	"github.com/handl-app/handl/internal/config"
	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/folders"
	"github.com/handl-app/handl/internal/history"
	"github.com/handl-app/handl/internal/httpserver"
	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/platforms"
	"github.com/handl-app/handl/internal/redis"
	"github.com/handl-app/handl/internal/search"
	"github.com/handl-app/handl/internal/sources/platformsfile"
	"github.com/handl-app/handl/internal/state"
	redisstore "github.com/handl-app/handl/internal/store/redis"
	"github.com/handl-app/handl/internal/suggest"
	"github.com/handl-app/handl/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Platform definitions: built-in set, optionally replaced from file.
	defs := domain.DefaultPlatforms
	if cfg.PlatformsFile != "" {
		file, err := platformsfile.NewLoader(cfg.PlatformsFile).Load()
		if err != nil {
			loggerClient.Errorf("Failed to load platforms file %s: %v", cfg.PlatformsFile, err)
			os.Exit(1)
		}
		mapped, err := platformsfile.NewMapper().MapPlatforms(file)
		if err != nil {
			loggerClient.Errorf("Failed to map platforms file %s: %v", cfg.PlatformsFile, err)
			os.Exit(1)
		}
		defs = mapped
		loggerClient.Info("platforms loaded from file",
			logger.String("file", cfg.PlatformsFile),
			logger.Int("count", len(defs)))
	}

	registry := platforms.NewRegistry(defs, domain.DefaultEnabledPlatformIDs)
	folderStore := folders.NewStore()
	historyLog := history.NewLog(cfg.HistoryCap)
	themeHolder := state.NewThemeHolder()

	store := redisstore.NewStore(redisClient)
	persister := state.NewPersister(store, loggerClient)

	// Restore persisted state; a cold cache just leaves the defaults in place.
	syncer := state.NewSyncer(store, folderStore, historyLog, registry, themeHolder, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to restore state from redis, running on defaults",
			logger.Error(err))
	}

	controller := search.NewController(registry, historyLog, loggerClient,
		search.WithSettleDelay(cfg.SettleDelay),
		search.WithOnSettled(func(query string, results []domain.Result) {
			persister.History(historyLog.Snapshot())
		}),
	)

	workflow := claim.NewWorkflow(controller, loggerClient,
		claim.WithProcessingDelay(cfg.ClaimDelay),
	)

	suggestClient := suggest.NewClient(cfg.SuggestURL, cfg.SuggestAPIKey, cfg.SuggestTimeout, loggerClient)

	reset := func(ctx context.Context) error {
		if err := store.Reset(ctx); err != nil {
			return fmt.Errorf("reset persisted state: %w", err)
		}
		workflow.Reset()
		controller.Reset()
		folderStore.Reset()
		historyLog.Clear()
		registry.SetEnabled(domain.DefaultEnabledPlatformIDs)
		themeHolder.Reset()
		return nil
	}

	d := deps.Deps{
		Logger:      loggerClient,
		StartTime:   time.Now(),
		Version:     version.Version,
		Commit:      version.Commit,
		BuildDate:   version.BuildDate,
		GoVersion:   version.GoVersion,
		TimeNow:     time.Now,
		RedisClient: redisClient,
		Platforms:   registry,
		Folders:     folderStore,
		History:     historyLog,
		Search:      controller,
		Claim:       workflow,
		Suggest:     suggestClient,
		Theme:       themeHolder,
		Persist:     persister,
		Reset:       reset,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Handl v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Handl %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Handl stopped cleanly")
	return nil
}
