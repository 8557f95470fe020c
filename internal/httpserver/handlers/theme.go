package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/httpserver/deps"
)

type themeBody struct {
	Theme domain.Theme `json:"theme"`
}

// GetTheme returns the active UI theme.
func GetTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, themeBody{Theme: d.Theme.Get()})
	}
}

// PutTheme sets the UI theme to default, dark or light.
func PutTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req themeBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
			return
		}
		if !d.Theme.Set(req.Theme) {
			writeJSON(w, http.StatusBadRequest, errorBody("unknown theme"))
			return
		}
		if d.Persist != nil {
			d.Persist.Theme(req.Theme)
		}
		writeJSON(w, http.StatusOK, themeBody{Theme: d.Theme.Get()})
	}
}
