// internal/ingest/ingest.go
package ingest

import (
	"strings"
	"time"

	"jobtools-engine/internal/domain"
)

// RawListing is a collected job posting as delivered by a collection
// collaborator: untyped strings, possibly HTML, possibly missing fields.
type RawListing struct {
	ID          string `json:"id"`
	Site        string `json:"site"`
	URL         string `json:"job_url"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	DatePosted  string `json:"date_posted"`
	JobType     string `json:"job_type"`
	WorkModel   string `json:"work_from_home_type"`
	IsRemote    string `json:"is_remote"`
	Description string `json:"description"`
}

// Normalize converts a raw listing into an immutable JobRecord: HTML is
// stripped, unicode folded to ascii, enums parsed, degree mentions
// extracted. Missing fields resolve to unknown sentinels, never errors.
func Normalize(raw RawListing) domain.JobRecord {
	title := FoldASCII(domain.CollapseSpace(raw.Title))
	desc := FoldASCII(StripHTML(raw.Description))

	wm := domain.ParseWorkModel(raw.WorkModel)
	if wm == domain.WorkUnknown && strings.EqualFold(strings.TrimSpace(raw.IsRemote), "true") {
		wm = domain.WorkRemote
	}

	var posted time.Time
	if s := strings.TrimSpace(raw.DatePosted); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			posted = t
		}
	}

	return domain.New(domain.Fields{
		ID:          strings.TrimSpace(raw.ID),
		Site:        strings.TrimSpace(raw.Site),
		URL:         strings.TrimSpace(raw.URL),
		Title:       title,
		Company:     strings.TrimSpace(raw.Company),
		Location:    strings.TrimSpace(raw.Location),
		PostedAt:    posted,
		WorkModel:   wm,
		JobType:     domain.ParseJobType(raw.JobType),
		Description: desc,
	})
}
