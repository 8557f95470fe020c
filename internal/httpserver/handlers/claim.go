package handlers

import (
	"errors"
	"net/http"

	"github.com/handl-app/handl/internal/claim"
	"github.com/handl-app/handl/internal/httpserver/deps"
)

type claimLine struct {
	PlatformID string  `json:"platform_id"`
	Handle     string  `json:"handle"`
	Price      float64 `json:"price"`
}

type claimResponse struct {
	Phase claim.Phase `json:"phase"`
	Lines []claimLine `json:"lines"`
	Total float64     `json:"total"`
}

func claimSummary(d deps.Deps, pending []string) claimResponse {
	resp := claimResponse{Phase: d.Claim.Phase(), Lines: []claimLine{}}
	byID := make(map[string]bool, len(pending))
	for _, id := range pending {
		byID[id] = true
	}
	for _, res := range d.Search.Results() {
		if !byID[res.ID] {
			continue
		}
		resp.Lines = append(resp.Lines, claimLine{
			PlatformID: res.ID,
			Handle:     d.Search.Query(),
			Price:      res.Price,
		})
		resp.Total += res.Price
	}
	return resp
}

// StartClaim snapshots the currently available platforms into a claim summary.
func StartClaim(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := d.Claim.Start()
		if err != nil {
			if errors.Is(err, claim.ErrNoAvailable) {
				writeJSON(w, http.StatusConflict, errorBody("no available handles to claim"))
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusOK, claimSummary(d, pending))
	}
}

// ConfirmClaim moves the claim to processing; completion is scheduled.
func ConfirmClaim(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Claim.Confirm(); err != nil {
			if errors.Is(err, claim.ErrNotPending) {
				writeJSON(w, http.StatusConflict, errorBody("no claim pending confirmation"))
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		writeJSON(w, http.StatusAccepted, claimSummary(d, d.Claim.Pending()))
	}
}

// GetClaim reports the current claim phase and its pending snapshot.
func GetClaim(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, claimSummary(d, d.Claim.Pending()))
	}
}

// ResetClaim abandons any in-flight claim and returns to the search phase.
func ResetClaim(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Claim.Reset()
		writeJSON(w, http.StatusOK, claimSummary(d, nil))
	}
}
