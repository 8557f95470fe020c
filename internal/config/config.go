package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	PlatformsFile string        // path to platforms.yaml (optional, empty = built-in defaults)
	SettleDelay   time.Duration // artificial search settling latency
	ClaimDelay    time.Duration // simulated claim processing latency
	HistoryCap    int           // max retained history entries

	SuggestURL     string        // suggestion service endpoint (optional, empty = fallback only)
	SuggestAPIKey  string        // optional bearer token for the suggestion service
	SuggestTimeout time.Duration // timeout for the suggestion call

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HANDL_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HANDL_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("HANDL_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HANDL_PRETTY_LOG", true),

		// Simulation
		PlatformsFile: getenv("HANDL_PLATFORMS_FILE", ""),
		SettleDelay:   mustDuration("HANDL_SETTLE_DELAY", 600*time.Millisecond),
		ClaimDelay:    mustDuration("HANDL_CLAIM_DELAY", 2500*time.Millisecond),
		HistoryCap:    getenvInt("HANDL_HISTORY_CAP", 50),

		// Suggestion service
		SuggestURL:     getenv("HANDL_SUGGEST_URL", ""),
		SuggestAPIKey:  getenv("HANDL_SUGGEST_API_KEY", ""),
		SuggestTimeout: mustDuration("HANDL_SUGGEST_TIMEOUT", 5*time.Second),

		// Redis settings
		RedisAddr:             getenv("HANDL_REDIS_ADDR", "localhost:6379"),
		RedisUser:             getenv("HANDL_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("HANDL_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("HANDL_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("HANDL_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: HANDL_REDIS_PASSWORD is required when HANDL_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		cfgCopy.SuggestAPIKey = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
