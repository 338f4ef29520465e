package store

import (
	"context"
	"database/sql"
	"time"

	"jobtools-engine/internal/domain"
)

// SeedRecords inserts a handful of sample listings so the UI has something
// to render on a fresh install. Existing IDs are ignored.
func SeedRecords(ctx context.Context, db *sql.DB) (added int, err error) {
	now := time.Now()
	samples := []domain.Fields{
		{
			ID: "seed-0001", Site: "seed", URL: "https://example.com/jobs/1",
			Title: "Software Engineer", Company: "Acme Robotics",
			Location: "San Jose, CA, USA", PostedAt: now.AddDate(0, 0, -1),
			WorkModel: domain.WorkHybrid, JobType: domain.JobFullTime,
			Description: "Build control software in Go. BS in CS or equivalent required.",
		},
		{
			ID: "seed-0002", Site: "seed", URL: "https://example.com/jobs/2",
			Title: "Data Scientist", Company: "Gauge Analytics",
			Location: "Austin, Texas", PostedAt: now.AddDate(0, 0, -2),
			WorkModel: domain.WorkRemote, JobType: domain.JobFullTime,
			Description: "Modeling and experimentation. PhD preferred, MS considered.",
		},
		{
			ID: "seed-0003", Site: "seed", URL: "https://example.com/jobs/3",
			Title: "Engineering Intern", Company: "Acme Robotics",
			Location: "Remote", PostedAt: now.AddDate(0, 0, -3),
			WorkModel: domain.WorkRemote, JobType: domain.JobInternship,
			Description: "Summer internship for undergraduate students.",
		},
	}
	for _, f := range samples {
		ok, err := InsertIgnore(ctx, db, domain.New(f))
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}
