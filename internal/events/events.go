package events

import (
	"encoding/json"
	"time"
)

const (
	TypeResultReady    = "result_ready"
	TypeConfigSaved    = "config_saved"
	TypeDatasetUpdated = "dataset_updated"
	TypeJobFavorited   = "job_favorited"
	TypePing           = "ping"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// ResultReady is the envelope published after each non-superseded recompute.
func ResultReady(seq uint64, count int) string {
	return MakeEvent("", TypeResultReady, 1, map[string]any{"seq": seq, "count": count})
}
