package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

const tableRatings = "ratings"

// Ratings caches the ratings table. One rating per (user_id, job_id);
// re-rating a job overwrites the score and refreshes created_at.
type Ratings struct {
	*Collection[domain.Rating]
}

func NewRatings(resource ports.Resource[domain.Rating], log zerolog.Logger, timeout time.Duration) *Ratings {
	order := ports.Order{Column: "created_at", Descending: true}
	return &Ratings{Collection: newCollection(resource, tableRatings, order, log, timeout)}
}

// FetchByJob returns the ratings for one job post without touching the
// shared cache.
func (s *Ratings) FetchByJob(ctx context.Context, jobID int64) []domain.Rating {
	return s.fetchWhere(ctx, "fetch_by_job", ports.Eq{Column: "job_id", Value: jobID})
}

// FetchByUser returns the ratings one user has given without touching the
// shared cache.
func (s *Ratings) FetchByUser(ctx context.Context, userID string) []domain.Rating {
	return s.fetchWhere(ctx, "fetch_by_user", ports.Eq{Column: "user_id", Value: userID})
}

// Submit upserts the rating for (in.UserID, in.JobID).
func (s *Ratings) Submit(ctx context.Context, in ports.SubmitRatingInput) *domain.Rating {
	now := time.Now().UTC()
	row := map[string]any{
		"user_id":    in.UserID,
		"job_id":     in.JobID,
		"rated_at":   in.Score,
		"created_at": now,
	}
	patch := map[string]any{
		"rated_at":   in.Score,
		"created_at": now,
	}
	filters := []ports.Eq{
		{Column: "user_id", Value: in.UserID},
		{Column: "job_id", Value: in.JobID},
	}
	sameKey := func(r domain.Rating) bool {
		return r.UserID == in.UserID && r.JobID == in.JobID
	}
	return s.upsert(ctx, "submit", row, patch, filters, sameKey)
}

// AverageRating is the arithmetic mean of the cached scores for one job,
// and exactly 0 when no rating exists for it.
func (s *Ratings) AverageRating(jobID int64) float64 {
	var sum float64
	var n int
	for _, r := range s.Items() {
		if r.JobID == jobID {
			sum += r.RatedAt
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ByUserAndJob returns the cached rating by userID for jobID, nil when
// the cache holds none.
func (s *Ratings) ByUserAndJob(userID string, jobID int64) *domain.Rating {
	return s.find(func(r domain.Rating) bool {
		return r.UserID == userID && r.JobID == jobID
	})
}

// HasRated reports whether the cache holds a rating by userID for jobID.
func (s *Ratings) HasRated(userID string, jobID int64) bool {
	return s.ByUserAndJob(userID, jobID) != nil
}
