package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/httpserver/handlers"
)

func init() { Register(registerFolders) }

func registerFolders(r chi.Router, d deps.Deps) {
	r.Get("/api/folders", handlers.ListFolders(d))
	r.Post("/api/folders", handlers.CreateFolder(d))
	r.Post("/api/folders/{folderID}/items", handlers.SaveItem(d))
}
