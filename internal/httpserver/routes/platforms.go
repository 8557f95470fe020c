package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/httpserver/handlers"
)

func init() { Register(registerPlatforms) }

func registerPlatforms(r chi.Router, d deps.Deps) {
	r.Get("/api/platforms", handlers.ListPlatforms(d))
	r.Put("/api/platforms/enabled", handlers.SetEnabledPlatforms(d))
	r.Post("/api/platforms/{id}/toggle", handlers.TogglePlatform(d))
}
