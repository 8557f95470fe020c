package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/httpserver/deps"
)

type createFolderRequest struct {
	Name string `json:"name"`
}

func (c createFolderRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 64)),
	)
}

type saveItemRequest struct {
	Handle string `json:"handle"`
	Kind   string `json:"type"`
}

func (s saveItemRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Handle, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Kind, validation.Required, validation.In(
			string(domain.KindBusiness), string(domain.KindProject),
		)),
	)
}

// ListFolders returns all folders with live item counts.
func ListFolders(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Folders.WithCounts())
	}
}

// CreateFolder adds a user folder and persists the new tree.
func CreateFolder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFolderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
			return
		}
		if err := req.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		id := d.Folders.Create(req.Name)
		if d.Persist != nil {
			d.Persist.Folders(d.Folders.Snapshot())
		}
		writeJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// SaveItem files a handle into a user folder.
func SaveItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		folderID := chi.URLParam(r, "folderID")

		var req saveItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
			return
		}
		if err := req.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		if !d.Folders.SaveItem(req.Handle, folderID, domain.ItemKind(req.Kind)) {
			writeJSON(w, http.StatusConflict, errorBody("item not saved"))
			return
		}
		if d.Persist != nil {
			d.Persist.Folders(d.Folders.Snapshot())
		}
		writeJSON(w, http.StatusOK, d.Folders.Get(folderID))
	}
}
