package score

import (
	"strings"

	"jobtools-engine/internal/domain"
)

// Tier is one term-weight tier: if any of its terms matches the record's
// text the tier contributes Weight exactly once, no matter how many terms
// hit or how often they repeat.
type Tier struct {
	Name   string
	Weight float64
	Terms  []domain.Term
}

// Config is a compiled, immutable sort configuration.
type Config struct {
	// LocationPriority holds normalized region tokens, earlier = higher.
	LocationPriority []string
	DegreeWeights    map[domain.Degree]float64
	Tiers            []Tier
}

// Breakdown reports each criterion's contribution; Total is always their sum.
type Breakdown struct {
	Degree   float64  `json:"degree"`
	Location float64  `json:"location"`
	Terms    float64  `json:"terms"`
	Total    float64  `json:"total"`
	Matched  []string `json:"matched,omitempty"`
}

// ScoredRecord pairs a record with its composite score. Created fresh on
// every recompute and never mutated.
type ScoredRecord struct {
	Record    domain.JobRecord `json:"record"`
	Score     float64          `json:"score"`
	Breakdown Breakdown        `json:"breakdown"`
}

// unrankedFloor is the location contribution for records whose region does
// not appear in the priority list: below every ranked tier (the lowest
// ranked entry contributes 0).
const unrankedFloor = -1

// One scores a single record. Deterministic: contributions accumulate in a
// fixed order (vocabulary order for degrees, configured order for tiers) so
// identical inputs yield bit-identical results.
func One(r domain.JobRecord, cfg Config) ScoredRecord {
	var b Breakdown

	for _, d := range domain.AllDegrees {
		w, ok := cfg.DegreeWeights[d]
		if ok && r.HasDegree(d) {
			b.Degree += w
		}
	}

	b.Location = locationContribution(r.State, cfg.LocationPriority)

	text := r.SearchText()
	for _, tier := range cfg.Tiers {
		for _, t := range tier.Terms {
			if t.Matches(text) {
				b.Terms += tier.Weight
				if tier.Name != "" {
					b.Matched = append(b.Matched, tier.Name)
				} else {
					b.Matched = append(b.Matched, t.Text)
				}
				break
			}
		}
	}

	b.Total = b.Degree + b.Location + b.Terms
	return ScoredRecord{Record: r, Score: b.Total, Breakdown: b}
}

// All scores every record in order.
func All(records []domain.JobRecord, cfg Config) []ScoredRecord {
	out := make([]ScoredRecord, len(records))
	for i, r := range records {
		out[i] = One(r, cfg)
	}
	return out
}

func locationContribution(state string, priority []string) float64 {
	if state != "" {
		for i, tok := range priority {
			if strings.EqualFold(tok, state) {
				return float64(len(priority) - 1 - i)
			}
		}
	}
	return unrankedFloor
}
