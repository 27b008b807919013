package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"rastreio/internal/model"
	"rastreio/internal/service"
)

// TrackingResult is the lookup payload: the matched record plus its
// derived presentation state.
type TrackingResult struct {
	Record model.TrackingRecord `json:"record"`
	Status model.StatusInfo     `json:"status"`
	Timing model.Timing         `json:"timing"`
}

// TrackHandler answers GET /api/tracking?q={term}. The three consumer
// outcomes stay distinguishable: a hit returns the record with status and
// timing, a miss returns 404 not_found, and a feed that never loaded
// returns 502 feed_unavailable.
func TrackHandler(tracker *service.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		term := strings.TrimSpace(r.URL.Query().Get("q"))
		if term == "" {
			writeError(w, http.StatusBadRequest, "missing_query")
			return
		}

		records, err := tracker.Records(r.Context())
		if err != nil {
			slog.Error("sheet unavailable", "error", err)
			writeError(w, http.StatusBadGateway, "feed_unavailable")
			return
		}

		rec := service.FindRecord(records, term)
		if rec == nil {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}

		now := tracker.Now()
		writeJSON(w, http.StatusOK, TrackingResult{
			Record: *rec,
			Status: service.DeriveStatus(*rec, now),
			Timing: service.DeriveTiming(*rec, now),
		})
	}
}

// RefreshHandler answers POST /api/tracking/refresh, the manual trigger.
func RefreshHandler(tracker *service.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if err := tracker.Refresh(r.Context()); err != nil {
			slog.Error("manual refresh failed", "error", err)
			writeError(w, http.StatusBadGateway, "refresh_failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// StatusHandler answers GET /api/status with cache introspection, so the
// client can tell "old data still serving after a failed refresh" apart
// from a lookup miss.
func StatusHandler(tracker *service.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, tracker.Stats())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
