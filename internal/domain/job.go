package domain

import (
	"sort"
	"strings"
	"time"
)

type WorkModel string

const (
	WorkOnSite  WorkModel = "onsite"
	WorkHybrid  WorkModel = "hybrid"
	WorkRemote  WorkModel = "remote"
	WorkUnknown WorkModel = "unknown"
)

func ParseWorkModel(s string) WorkModel {
	m := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(m, "remote"):
		return WorkRemote
	case strings.Contains(m, "hybrid"):
		return WorkHybrid
	case strings.Contains(m, "onsite"), strings.Contains(m, "on-site"), strings.Contains(m, "on site"), strings.Contains(m, "office"):
		return WorkOnSite
	default:
		return WorkUnknown
	}
}

type JobType string

const (
	JobFullTime   JobType = "fulltime"
	JobPartTime   JobType = "parttime"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
	JobUnknown    JobType = "unknown"
)

func ParseJobType(s string) JobType {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.ReplaceAll(t, "-", "")
	t = strings.ReplaceAll(t, " ", "")
	switch {
	case strings.Contains(t, "fulltime"):
		return JobFullTime
	case strings.Contains(t, "parttime"):
		return JobPartTime
	case strings.Contains(t, "contract"), strings.Contains(t, "temporary"):
		return JobContract
	case strings.Contains(t, "intern"):
		return JobInternship
	default:
		return JobUnknown
	}
}

// JobRecord is one collected job listing. Records are built once by New and
// never mutated afterwards; the lowercased search views and the degree
// mentions are derived at construction so repeated term matching during
// filtering and scoring never re-scans raw text.
type JobRecord struct {
	ID          string    `json:"id"`
	Site        string    `json:"site"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	LocationRaw string    `json:"location"`
	State       string    `json:"state"`
	PostedAt    time.Time `json:"postedAt"`
	WorkModel   WorkModel `json:"workModel"`
	JobType     JobType   `json:"jobType"`
	Description string    `json:"description"`
	Degrees     []Degree  `json:"degrees"`

	searchTitle string
	searchDesc  string
	searchAll   string
}

// Fields holds the raw inputs for a JobRecord. Degrees may be pre-extracted
// (e.g. loaded from the archive); when nil they are parsed from the text.
type Fields struct {
	ID          string
	Site        string
	URL         string
	Title       string
	Company     string
	Location    string
	PostedAt    time.Time
	WorkModel   WorkModel
	JobType     JobType
	Description string
	Degrees     []Degree
}

func New(f Fields) JobRecord {
	wm := f.WorkModel
	if wm == "" {
		wm = WorkUnknown
	}
	jt := f.JobType
	if jt == "" {
		jt = JobUnknown
	}
	degrees := f.Degrees
	if degrees == nil {
		degrees = ParseDegrees(f.Title + " " + f.Description)
	}
	sort.Slice(degrees, func(i, j int) bool { return degrees[i] < degrees[j] })

	title := CollapseSpace(strings.ToLower(f.Title))
	desc := CollapseSpace(strings.ToLower(f.Description))
	return JobRecord{
		ID:          f.ID,
		Site:        f.Site,
		URL:         f.URL,
		Title:       f.Title,
		Company:     f.Company,
		LocationRaw: f.Location,
		State:       ParseState(f.Location),
		PostedAt:    f.PostedAt,
		WorkModel:   wm,
		JobType:     jt,
		Description: f.Description,
		Degrees:     degrees,
		searchTitle: title,
		searchDesc:  desc,
		searchAll:   strings.TrimSpace(title + " " + desc),
	}
}

// Scope selects which record text a term is matched against.
type Scope string

const (
	ScopeAny         Scope = "any"
	ScopeTitle       Scope = "title"
	ScopeDescription Scope = "description"
)

// Text returns the prepared (lowercased, space-collapsed) view for a scope.
func (r JobRecord) Text(s Scope) string {
	switch s {
	case ScopeTitle:
		return r.searchTitle
	case ScopeDescription:
		return r.searchDesc
	default:
		return r.searchAll
	}
}

// SearchText is the title+description view, the default matching scope.
func (r JobRecord) SearchText() string { return r.searchAll }

func (r JobRecord) HasDegree(d Degree) bool {
	for _, have := range r.Degrees {
		if have == d {
			return true
		}
	}
	return false
}

// CollapseSpace squeezes runs of whitespace to single spaces so quoted
// phrases match contiguously regardless of source formatting.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
