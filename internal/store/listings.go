package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"jobtools-engine/internal/domain"
)

// ListOpts selects which slice of the archive becomes a dataset snapshot:
// the recent window (WindowDays), or the favorites shortlist, or everything.
type ListOpts struct {
	WindowDays int
	Favorites  bool
	All        bool
}

const dateLayout = "2006-01-02"

// InsertIgnore adds a record to the archive; returns whether a new row was
// added (existing IDs are left untouched).
func InsertIgnore(ctx context.Context, db *sql.DB, r domain.JobRecord) (added bool, err error) {
	posted := ""
	if !r.PostedAt.IsZero() {
		posted = r.PostedAt.Format(dateLayout)
	}
	degrees := make([]string, len(r.Degrees))
	for i, d := range r.Degrees {
		degrees[i] = string(d)
	}

	_, err = db.ExecContext(ctx, `
INSERT OR IGNORE INTO listings
  (id, site, url, title, company, location, state, date_posted, work_model, job_type, description, degrees, first_seen)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		r.ID, r.Site, r.URL, r.Title, r.Company, r.LocationRaw, r.State, posted,
		string(r.WorkModel), string(r.JobType), r.Description,
		strings.Join(degrees, ","), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("insert listing: %w", err)
	}

	var changes int
	if e := db.QueryRowContext(ctx, `SELECT changes();`).Scan(&changes); e == nil {
		return changes > 0, nil
	}
	return true, nil
}

// ListRecords yields an ordered dataset snapshot for a pipeline request.
func ListRecords(ctx context.Context, db *sql.DB, opts ListOpts) ([]domain.JobRecord, error) {
	q := `
SELECT id, site, url, title, company, location, date_posted, work_model, job_type, description, degrees
FROM listings`
	var args []any
	switch {
	case opts.Favorites:
		q += ` WHERE is_favorite = 1`
	case !opts.All && opts.WindowDays > 0:
		cutoff := time.Now().AddDate(0, 0, -opts.WindowDays).Format(dateLayout)
		q += ` WHERE date_posted >= ?`
		args = append(args, cutoff)
	}
	q += ` ORDER BY id;`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		var id, site, url, title, company, location, posted, workModel, jobType, desc, degreesRaw string
		if err := rows.Scan(&id, &site, &url, &title, &company, &location, &posted,
			&workModel, &jobType, &desc, &degreesRaw); err != nil {
			return nil, err
		}

		var postedAt time.Time
		if posted != "" {
			postedAt, _ = time.Parse(dateLayout, posted)
		}
		var degrees []domain.Degree
		if degreesRaw == "" {
			degrees = []domain.Degree{}
		} else {
			for _, tok := range strings.Split(degreesRaw, ",") {
				degrees = append(degrees, domain.Degree(tok))
			}
		}

		out = append(out, domain.New(domain.Fields{
			ID:          id,
			Site:        site,
			URL:         url,
			Title:       title,
			Company:     company,
			Location:    location,
			PostedAt:    postedAt,
			WorkModel:   domain.WorkModel(workModel),
			JobType:     domain.JobType(jobType),
			Description: desc,
			Degrees:     degrees,
		}))
	}
	return out, rows.Err()
}

// SetFavorite flips the favorites flag for one record.
func SetFavorite(ctx context.Context, db *sql.DB, id string, fav bool) error {
	res, err := db.ExecContext(ctx, `UPDATE listings SET is_favorite = ? WHERE id = ?;`, boolToInt(fav), id)
	if err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Stats is a cheap change marker for the refresh lane: if either value
// moves, the archive changed and a fresh snapshot should be submitted.
type Stats struct {
	Count   int64
	MaxSeen string
}

func ArchiveStats(ctx context.Context, db *sql.DB) (Stats, error) {
	var s Stats
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(MAX(first_seen), '') FROM listings;`).Scan(&s.Count, &s.MaxSeen)
	return s, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
