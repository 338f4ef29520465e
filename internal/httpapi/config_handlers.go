package httpapi

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"jobtools-engine/internal/config"
	"jobtools-engine/internal/events"
)

type ConfigHandler struct {
	Deps
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	cur := h.CfgVal.Load().(config.Config)
	writeJSON(w, cur)
}

// Put validates, saves and swaps in a new live config, then resubmits the
// pipeline so the ranked view catches up with the edit. Validation errors
// come back structured so the editing surface can show them inline.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming config.Config
	if err := dec.Decode(&incoming); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), 400)
		return
	}
	if dec.More() {
		http.Error(w, "invalid JSON: trailing data", 400)
		return
	}

	normalized, vr := config.NormalizeAndValidate(incoming)
	if !vr.OK() {
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, normalized); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	saved, err := h.LoadCfg()
	if err != nil {
		http.Error(w, "saved but reload failed: "+err.Error(), 500)
		return
	}
	h.CfgVal.Store(saved)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeConfigSaved, 1, nil))

	seq, err := h.Resubmit(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "resubmit_failed", err.Error())
		return
	}
	writeJSON(w, map[string]any{"config": saved, "seq": seq, "warnings": vr.Warnings})
}

// Validate checks a candidate config without saving it.
func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming config.Config
	if err := dec.Decode(&incoming); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), 400)
		return
	}
	_, vr := config.NormalizeAndValidate(incoming)
	writeJSON(w, vr)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs, _ := filepath.Abs(h.UserCfgPath)
	writeJSON(w, map[string]any{"path": abs})
}

// Names lists saved named filter/sort pairs.
func (h ConfigHandler) Names(w http.ResponseWriter, r *http.Request) {
	names, err := config.ListNamed(h.DataDir)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "config_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"names": names})
}

// NamedGet serves one saved pair: GET /config/named/{name}.
func (h ConfigHandler) NamedGet(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/config/named/")
	p, err := config.LoadNamed(h.DataDir, name)
	if err != nil {
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
		return
	}
	writeJSON(w, p)
}

// NamedPut saves one pair: PUT /config/named/{name}.
func (h ConfigHandler) NamedPut(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/config/named/")

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var p config.NamedPair
	if err := dec.Decode(&p); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), 400)
		return
	}

	normalized, vr := config.ValidatePair(p)
	if !vr.OK() {
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}
	if err := config.SaveNamed(h.DataDir, name, normalized); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	writeJSON(w, map[string]any{"ok": true, "name": name, "warnings": vr.Warnings})
}
