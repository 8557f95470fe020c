package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/httpserver/deps"
)

type platformsResponse struct {
	Platforms []domain.PlatformDef `json:"platforms"`
	Enabled   []string             `json:"enabled"`
}

type setEnabledRequest struct {
	IDs []string `json:"ids"`
}

func (s setEnabledRequest) Validate() error {
	// An empty list is legal: it disables every platform.
	return validation.ValidateStruct(&s,
		validation.Field(&s.IDs, validation.Length(0, 50)),
	)
}

// ListPlatforms returns every platform definition plus the enabled set.
func ListPlatforms(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, platformsResponse{
			Platforms: d.Platforms.All(),
			Enabled:   d.Platforms.Enabled(),
		})
	}
}

// SetEnabledPlatforms replaces the enabled set. Unknown ids are dropped.
func SetEnabledPlatforms(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setEnabledRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
			return
		}
		if err := req.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		enabled := d.Platforms.SetEnabled(req.IDs)
		if d.Persist != nil {
			d.Persist.EnabledPlatforms(enabled)
		}
		writeJSON(w, http.StatusOK, platformsResponse{
			Platforms: d.Platforms.All(),
			Enabled:   enabled,
		})
	}
}

// TogglePlatform flips one platform in or out of the enabled set.
func TogglePlatform(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		found := false
		for _, def := range d.Platforms.All() {
			if def.ID == id {
				found = true
				break
			}
		}
		if !found {
			writeJSON(w, http.StatusNotFound, errorBody("unknown platform"))
			return
		}

		enabled := d.Platforms.Toggle(id)
		if d.Persist != nil {
			d.Persist.EnabledPlatforms(enabled)
		}
		writeJSON(w, http.StatusOK, platformsResponse{
			Platforms: d.Platforms.All(),
			Enabled:   enabled,
		})
	}
}
