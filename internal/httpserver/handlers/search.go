package handlers

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/handl-app/handl/internal/domain"
	"github.com/handl-app/handl/internal/httpserver/deps"
	"github.com/handl-app/handl/internal/search"
)

type searchRequest struct {
	Query string `json:"query"`
}

func (s searchRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Query, validation.Length(0, 100)),
	)
}

type searchResponse struct {
	Token   string          `json:"token,omitempty"`
	State   search.State    `json:"state"`
	Query   string          `json:"query"`
	Results []domain.Result `json:"results"`
}

// SubmitSearch starts a new search pass. Results come back in the
// checking state and settle after the configured delay.
func SubmitSearch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid json body"))
			return
		}
		if err := req.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
			return
		}

		token := d.Search.Submit(req.Query)

		writeJSON(w, http.StatusAccepted, searchResponse{
			Token:   token,
			State:   d.Search.State(),
			Query:   d.Search.Query(),
			Results: d.Search.Results(),
		})
	}
}

// GetSearch returns the current search state, including settled results.
func GetSearch(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, searchResponse{
			State:   d.Search.State(),
			Query:   d.Search.Query(),
			Results: d.Search.Results(),
		})
	}
}
