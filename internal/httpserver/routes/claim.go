package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/httpserver/handlers"
)

func init() { Register(registerClaim) }

func registerClaim(r chi.Router, d deps.Deps) {
	r.Get("/api/claim", handlers.GetClaim(d))
	r.Post("/api/claim", handlers.StartClaim(d))
	r.Post("/api/claim/confirm", handlers.ConfirmClaim(d))
	r.Post("/api/claim/reset", handlers.ResetClaim(d))
}
