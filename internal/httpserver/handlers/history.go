package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/handl-app/handl/internal/httpserver/deps"
)

// ListHistory returns recorded searches, newest first.
func ListHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.History.Items())
	}
}

// DeleteHistoryItem removes one entry. Unknown ids are a no-op.
func DeleteHistoryItem(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.History.Delete(chi.URLParam(r, "id"))
		if d.Persist != nil {
			d.Persist.History(d.History.Snapshot())
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ClearHistory drops every entry unconditionally.
func ClearHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.History.Clear()
		if d.Persist != nil {
			d.Persist.History(nil)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportHistory streams the log as a CSV attachment.
func ExportHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := d.History.ExportCSV()
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="handl_history.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
