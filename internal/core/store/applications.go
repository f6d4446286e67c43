package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

const tableApplications = "applications"

// Applications caches the applications table. Submissions are idempotent
// by (user_id, job_id): reapplying to the same job overwrites the earlier
// application instead of duplicating it.
type Applications struct {
	*Collection[domain.Application]
}

func NewApplications(resource ports.Resource[domain.Application], log zerolog.Logger, timeout time.Duration) *Applications {
	order := ports.Order{Column: "timestamp", Descending: true}
	return &Applications{Collection: newCollection(resource, tableApplications, order, log, timeout)}
}

// FetchByUser returns one user's applications without touching the shared
// cache.
func (s *Applications) FetchByUser(ctx context.Context, userID string) []domain.Application {
	return s.fetchWhere(ctx, "fetch_by_user", ports.Eq{Column: "user_id", Value: userID})
}

// FetchByJob returns the applications for one job post without touching
// the shared cache.
func (s *Applications) FetchByJob(ctx context.Context, jobID int64) []domain.Application {
	return s.fetchWhere(ctx, "fetch_by_job", ports.Eq{Column: "job_id", Value: jobID})
}

// Submit upserts the application for (in.UserID, in.JobID): the second
// submission for the same pair wins wholesale, timestamp included.
func (s *Applications) Submit(ctx context.Context, in ports.SubmitApplicationInput) *domain.Application {
	fields := map[string]any{
		"first_name":   in.FirstName,
		"last_name":    in.LastName,
		"email":        in.Email,
		"phone":        in.Phone,
		"address":      in.Address,
		"city":         in.City,
		"state":        in.State,
		"education":    in.Education,
		"position":     in.Position,
		"resume":       nullable(in.Resume),
		"cover_letter": nullable(in.CoverLetter),
		"references":   nullable(in.References),
		"timestamp":    time.Now().Unix(),
	}

	row := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		row[k] = v
	}
	row["user_id"] = in.UserID
	row["job_id"] = in.JobID

	filters := []ports.Eq{
		{Column: "user_id", Value: in.UserID},
		{Column: "job_id", Value: in.JobID},
	}
	sameKey := func(a domain.Application) bool {
		return a.UserID == in.UserID && a.JobID == in.JobID
	}
	return s.upsert(ctx, "submit", row, fields, filters, sameKey)
}

// ByJobID returns the cached application for one job post, nil when the
// cache holds none.
func (s *Applications) ByJobID(jobID int64) *domain.Application {
	return s.find(func(a domain.Application) bool { return a.JobID == jobID })
}

// GroupedByJob partitions the cached applications by job post, preserving
// the cache's newest-first order within each group.
func (s *Applications) GroupedByJob() map[int64][]domain.Application {
	grouped := make(map[int64][]domain.Application)
	for _, a := range s.Items() {
		grouped[a.JobID] = append(grouped[a.JobID], a)
	}
	return grouped
}
