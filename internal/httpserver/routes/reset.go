package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/httpserver/handlers"
)

func init() { Register(registerReset) }

func registerReset(r chi.Router, d deps.Deps) {
	r.Post("/api/reset", handlers.Reset(d))
}
