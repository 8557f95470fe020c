package handlers

import (
	"net/http"
	"strings"

	"github.com/handl-app/handl/internal/httpserver/deps"
)

type suggestResponse struct {
	Seed        string   `json:"seed"`
	Suggestions []string `json:"suggestions"`
}

// Suggest returns handle ideas for a seed name. Falls back to local
// derivations when no upstream generator is configured or reachable.
func Suggest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seed := strings.TrimSpace(r.URL.Query().Get("name"))
		if seed == "" {
			writeJSON(w, http.StatusBadRequest, errorBody("missing name parameter"))
			return
		}

		writeJSON(w, http.StatusOK, suggestResponse{
			Seed:        seed,
			Suggestions: d.Suggest.Suggest(r.Context(), seed),
		})
	}
}
