package filter

import (
	mapset "github.com/deckarep/golang-set/v2"

	"jobtools-engine/internal/domain"
)

// Config is a compiled, immutable filter configuration. An empty (or nil)
// inclusion set means "no restriction"; an empty requisite list means "no
// requirement". Blacklist terms always win over requisites.
type Config struct {
	WorkModels mapset.Set[domain.WorkModel]
	JobTypes   mapset.Set[domain.JobType]
	Scope      domain.Scope
	Requisites []domain.Term
	Blacklist  []domain.Term
}

func (c Config) scope() domain.Scope {
	if c.Scope == "" {
		return domain.ScopeAny
	}
	return c.Scope
}

// Apply returns the order-preserving subsequence of records that pass cfg.
func Apply(records []domain.JobRecord, cfg Config) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(records))
	for _, r := range records {
		if Keep(r, cfg) {
			out = append(out, r)
		}
	}
	return out
}

// Keep is the per-record inclusion test. Pure function of its inputs.
func Keep(r domain.JobRecord, cfg Config) bool {
	if cfg.WorkModels != nil && cfg.WorkModels.Cardinality() > 0 && !cfg.WorkModels.Contains(r.WorkModel) {
		return false
	}
	if cfg.JobTypes != nil && cfg.JobTypes.Cardinality() > 0 && !cfg.JobTypes.Contains(r.JobType) {
		return false
	}

	text := r.Text(cfg.scope())

	// Exclusion wins: a term present in both lists still excludes.
	for _, t := range cfg.Blacklist {
		if t.Matches(text) {
			return false
		}
	}
	for _, t := range cfg.Requisites {
		if !t.Matches(text) {
			return false
		}
	}
	return true
}
