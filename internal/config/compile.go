package config

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"jobtools-engine/internal/domain"
	"jobtools-engine/internal/filter"
	"jobtools-engine/internal/score"
)

// CompileFilter turns edited settings into the engine's immutable filter
// config. Settings that passed NormalizeAndValidate compile without error.
func CompileFilter(fs FilterSettings) (filter.Config, error) {
	req, err := domain.ParseTerms(fs.Require)
	if err != nil {
		return filter.Config{}, fmt.Errorf("filter.require: %w", err)
	}
	excl, err := domain.ParseTerms(fs.Exclude)
	if err != nil {
		return filter.Config{}, fmt.Errorf("filter.exclude: %w", err)
	}

	wms := mapset.NewSet[domain.WorkModel]()
	for _, s := range fs.WorkModels {
		wms.Add(domain.ParseWorkModel(s))
	}
	jts := mapset.NewSet[domain.JobType]()
	for _, s := range fs.JobTypes {
		jts.Add(domain.ParseJobType(s))
	}

	return filter.Config{
		WorkModels: wms,
		JobTypes:   jts,
		Scope:      domain.Scope(fs.Scope),
		Requisites: req,
		Blacklist:  excl,
	}, nil
}

// CompileSort turns edited settings into the engine's immutable sort config.
func CompileSort(ss SortSettings) (score.Config, error) {
	weights := make(map[domain.Degree]float64, len(ss.DegreeWeights))
	for tok, w := range ss.DegreeWeights {
		d, ok := domain.CanonicalDegree(tok)
		if !ok {
			return score.Config{}, fmt.Errorf("sort.degree_weights: unrecognized degree token %q", tok)
		}
		weights[d] = w
	}

	tiers := make([]score.Tier, 0, len(ss.Tiers))
	for i, ts := range ss.Tiers {
		if ts.Weight == nil {
			return score.Config{}, fmt.Errorf("sort.tiers[%d] is missing its weight field", i)
		}
		terms, err := domain.ParseTerms(ts.Terms)
		if err != nil {
			return score.Config{}, fmt.Errorf("sort.tiers[%d].terms: %w", i, err)
		}
		tiers = append(tiers, score.Tier{Name: ts.Name, Weight: *ts.Weight, Terms: terms})
	}

	priority := make([]string, len(ss.LocationPriority))
	for i, loc := range ss.LocationPriority {
		priority[i] = domain.NormalizeRegion(loc)
	}

	return score.Config{
		LocationPriority: priority,
		DegreeWeights:    weights,
		Tiers:            tiers,
	}, nil
}
