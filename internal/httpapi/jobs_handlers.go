package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"jobtools-engine/internal/events"
	"jobtools-engine/internal/pipeline"
	"jobtools-engine/internal/store"
)

type JobsHandler struct {
	Deps
}

// List serves the latest delivered ranked view. An empty dataset is a valid
// empty list, not an error; before the first delivery the list is empty too.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	res, ok := h.Coord.Latest()
	if !ok {
		writeJSON(w, pipeline.Result{Records: nil})
		return
	}
	writeJSON(w, res)
}

// Favorite toggles the favorites flag: POST /jobs/{id}/favorite with body
// ignored flips persisted state, then resubmits so a favorites-window view
// reflects the change.
func (h JobsHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, okSuffix := strings.CutSuffix(rest, "/favorite")
	if !okSuffix || id == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_path", "expected /jobs/{id}/favorite")
		return
	}

	fav := r.URL.Query().Get("value") != "false"
	if err := store.SetFavorite(r.Context(), h.DB, id, fav); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteError(w, r, http.StatusNotFound, "not_found", "no such record")
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobFavorited, 1, map[string]any{"id": id, "favorite": fav}))

	seq, err := h.Resubmit(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "resubmit_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": id, "favorite": fav, "seq": seq})
}

// Seed inserts sample listings and kicks a recompute.
func (h JobsHandler) Seed(w http.ResponseWriter, r *http.Request) {
	added, err := store.SeedRecords(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeDatasetUpdated, 1, map[string]any{"added": added}))

	seq, err := h.Resubmit(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "resubmit_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "added": added, "seq": seq})
}
