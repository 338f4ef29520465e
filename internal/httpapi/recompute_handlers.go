package httpapi

import "net/http"

type RecomputeHandler struct {
	Deps
}

// Run submits a fresh pipeline request over the current archive and config
// and returns its sequence number without waiting for the result.
func (h RecomputeHandler) Run(w http.ResponseWriter, r *http.Request) {
	seq, err := h.Resubmit(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "resubmit_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "seq": seq})
}
