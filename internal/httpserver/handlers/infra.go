package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/handl-app/handl/internal/httpserver/deps"
)

type componentStatus struct {
	OK          bool   `json:"ok"`
	Platforms   *int   `json:"platforms,omitempty"`
	Enabled     *int   `json:"enabled,omitempty"`
	Folders     *int   `json:"folders,omitempty"`
	HistorySize *int   `json:"history_size,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Error       string `json:"error,omitempty"`
}

type infraResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		platformCount := len(d.Platforms.All())
		enabledCount := len(d.Platforms.Enabled())
		folderCount := len(d.Folders.WithCounts())
		historySize := d.History.Len()

		redisStatus := checkRedis(d)

		components := map[string]componentStatus{
			"platforms": {
				OK:        platformCount > 0,
				Platforms: &platformCount,
				Enabled:   &enabledCount,
			},
			"state": {
				OK:          true,
				Folders:     &folderCount,
				HistorySize: &historySize,
			},
			"redis": redisStatus,
		}

		response := infraResponse{
			Mode:       determineMode(components),
			Components: components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

func determineMode(components map[string]componentStatus) string {
	// No enabled platform means no search can run at all.
	if platforms, exists := components["platforms"]; exists {
		if !platforms.OK || (platforms.Enabled != nil && *platforms.Enabled == 0) {
			return "critical"
		}
	}

	// Redis down is survivable but state no longer persists across restarts.
	if redis, exists := components["redis"]; exists && !redis.OK {
		return "degraded"
	}

	return "nominal"
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "client not initialized",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := d.RedisClient.Ping(ctx).Err()
	if err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "persistence-enabled",
		Error:  "none",
	}
}
