package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Get("/api/history", handlers.ListHistory(d))
	r.Get("/api/history/export", handlers.ExportHistory(d))
	r.Delete("/api/history", handlers.ClearHistory(d))
	r.Delete("/api/history/{id}", handlers.DeleteHistoryItem(d))
}
