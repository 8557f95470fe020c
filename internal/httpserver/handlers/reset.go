package handlers

import (
	"net/http"

	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/logger"
)

// Reset wipes persisted state and reseeds every in-memory store.
func Reset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Reset == nil {
			writeJSON(w, http.StatusServiceUnavailable, errorBody("reset not wired"))
			return
		}
		if err := d.Reset(r.Context()); err != nil {
			d.Logger.Error("reset failed", logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, errorBody("reset failed"))
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}
