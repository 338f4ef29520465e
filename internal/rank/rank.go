package rank

import (
	"sort"

	"jobtools-engine/internal/score"
)

// Order sorts scored records descending by composite score. The tie-break
// chain makes the order total and reproducible for distinct record IDs:
// posted date (most recent first), location contribution (descending),
// record ID (ascending). The input slice is not modified.
func Order(scored []score.ScoredRecord) []score.ScoredRecord {
	out := make([]score.ScoredRecord, len(scored))
	copy(out, scored)
	sort.Slice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Less is the rank comparator.
func Less(a, b score.ScoredRecord) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if !a.Record.PostedAt.Equal(b.Record.PostedAt) {
		return a.Record.PostedAt.After(b.Record.PostedAt)
	}
	if a.Breakdown.Location != b.Breakdown.Location {
		return a.Breakdown.Location > b.Breakdown.Location
	}
	return a.Record.ID < b.Record.ID
}
