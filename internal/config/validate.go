package config

import (
	"fmt"
	"math"
	"strings"

	"jobtools-engine/internal/domain"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func trimList(xs []string) []string {
	seen := map[string]bool{}
	var ys []string
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}

// NormalizeAndValidate trims and dedupes list entries, canonicalizes region
// and degree tokens, and checks everything the pipeline assumes. A config
// that passes here cannot fail mid-pipeline: all three stages are total
// functions over the compiled forms.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Filter = normalizeFilter(out.Filter, &res)
	out.Sort = normalizeSort(out.Sort, &res)

	// ---- app / dataset / pipeline sanity ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.Dataset.WindowDays <= 0 {
		res.addErr("dataset.window_days must be > 0")
	}
	if out.Dataset.RefreshSeconds <= 0 {
		res.addErr("dataset.refresh_seconds must be > 0")
	} else if out.Dataset.RefreshSeconds < 2 {
		res.addWarn("dataset.refresh_seconds is very low (%d); recomputes may thrash.", out.Dataset.RefreshSeconds)
	}
	if out.Pipeline.ChunkSize < 0 {
		res.addErr("pipeline.chunk_size must be >= 0 (0 selects the default)")
	}
	if out.Pipeline.Workers < 0 {
		res.addErr("pipeline.workers must be >= 0 (0 selects the default)")
	}

	return out, res
}

// ValidatePair validates a named filter/sort pair the same way the live
// config sections are validated.
func ValidatePair(p NamedPair) (NamedPair, Validation) {
	out := p
	var res Validation
	out.Filter = normalizeFilter(out.Filter, &res)
	out.Sort = normalizeSort(out.Sort, &res)
	return out, res
}

func normalizeFilter(fs FilterSettings, res *Validation) FilterSettings {
	out := fs
	out.WorkModels = trimList(out.WorkModels)
	out.JobTypes = trimList(out.JobTypes)
	out.Require = trimList(out.Require)
	out.Exclude = trimList(out.Exclude)

	if s := out.Scope; s != "" && s != string(domain.ScopeAny) &&
		s != string(domain.ScopeTitle) && s != string(domain.ScopeDescription) {
		res.addErr("filter.scope must be any, title or description; got %q", s)
	}
	for _, wm := range out.WorkModels {
		if domain.ParseWorkModel(wm) == domain.WorkUnknown && !strings.EqualFold(wm, "unknown") {
			res.addErr("filter.work_models: unrecognized work model %q", wm)
		}
	}
	for _, jt := range out.JobTypes {
		if domain.ParseJobType(jt) == domain.JobUnknown && !strings.EqualFold(jt, "unknown") {
			res.addErr("filter.job_types: unrecognized job type %q", jt)
		}
	}
	checkTerms(res, "filter.require", out.Require)
	checkTerms(res, "filter.exclude", out.Exclude)

	// A term in both lists is legal; exclusion wins. Warn so the user sees it.
	excl := map[string]bool{}
	for _, e := range out.Exclude {
		excl[strings.ToLower(e)] = true
	}
	for _, r := range out.Require {
		if excl[strings.ToLower(r)] {
			res.addWarn("term appears in both require and exclude (exclusion wins): %q", r)
		}
	}
	return out
}

func normalizeSort(ss SortSettings, res *Validation) SortSettings {
	out := ss
	out.LocationPriority = trimList(out.LocationPriority)
	for i, loc := range out.LocationPriority {
		out.LocationPriority[i] = domain.NormalizeRegion(loc)
	}

	for tok, w := range out.DegreeWeights {
		if _, ok := domain.CanonicalDegree(tok); !ok {
			res.addErr("sort.degree_weights: unrecognized degree token %q", tok)
		}
		if w < 0 {
			res.addErr("sort.degree_weights[%s] must be >= 0", tok)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			res.addErr("sort.degree_weights[%s] must be finite", tok)
		}
	}
	for i, tier := range out.Tiers {
		if tier.Weight == nil {
			res.addErr("sort.tiers[%d] is missing its weight field", i)
		} else if math.IsNaN(*tier.Weight) || math.IsInf(*tier.Weight, 0) {
			res.addErr("sort.tiers[%d].weight must be finite", i)
		} else if *tier.Weight == 0 {
			res.addWarn("sort.tiers[%d] has weight 0 and contributes nothing", i)
		}
		out.Tiers[i].Terms = trimList(tier.Terms)
		checkTerms(res, fmt.Sprintf("sort.tiers[%d].terms", i), out.Tiers[i].Terms)
	}
	return out
}

func checkTerms(res *Validation, name string, raw []string) {
	if _, err := domain.ParseTerms(raw); err != nil {
		res.addErr("%s: %v", name, err)
	}
}
