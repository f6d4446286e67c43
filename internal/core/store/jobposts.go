package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianglenncurilan/web-quickwork/internal/api/metrics"
	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

const tableJobPosts = "job_posts"

// JobPosts caches the job_posts table. Posts are mutable and deletable by
// their poster; ordering is newest-first by created_at.
type JobPosts struct {
	*Collection[domain.JobPost]
}

func NewJobPosts(resource ports.Resource[domain.JobPost], log zerolog.Logger, timeout time.Duration) *JobPosts {
	order := ports.Order{Column: "created_at", Descending: true}
	return &JobPosts{Collection: newCollection(resource, tableJobPosts, order, log, timeout)}
}

// FetchByUser returns the posts created by one poster without touching the
// shared cache.
func (s *JobPosts) FetchByUser(ctx context.Context, userID string) []domain.JobPost {
	return s.fetchWhere(ctx, "fetch_by_user", ports.Eq{Column: "user_id", Value: userID})
}

// FetchByID resolves a single post, cache first: a cached id is returned
// without a network call. On a miss the backend is queried by primary key;
// the one-row array a key lookup yields is normalized to a scalar, and an
// empty result means not-found (nil, no recorded error).
func (s *JobPosts) FetchByID(ctx context.Context, id int64) *domain.JobPost {
	start := s.begin()
	if cached := s.find(func(p domain.JobPost) bool { return p.ID == id }); cached != nil {
		metrics.CacheLookupsTotal.WithLabelValues(tableJobPosts, "hit").Inc()
		s.finish("fetch_by_id", start, nil)
		return cached
	}
	metrics.CacheLookupsTotal.WithLabelValues(tableJobPosts, "miss").Inc()

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	rows, err := s.resource.Select(ctx, nil, ports.Eq{Column: "id", Value: id})
	if err != nil {
		s.finish("fetch_by_id", start, err)
		return nil
	}
	s.finish("fetch_by_id", start, nil)

	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// Create inserts a new post and prepends it to the cache. posted_at and
// created_at are stamped here, matching what the board sorts and displays.
func (s *JobPosts) Create(ctx context.Context, in ports.CreateJobPostInput) *domain.JobPost {
	now := time.Now().UTC()
	row := map[string]any{
		"job_name":        in.JobName,
		"job_description": in.JobDescription,
		"user_id":         in.UserID,
		"monthly_rate":    in.MonthlyRate,
		"job_link":        nullable(in.JobLink),
		"job_type":        in.JobType,
		"imageurl":        nullable(in.ImageURL),
		"posted_at":       now,
		"created_at":      now,
	}
	return s.create(ctx, "create", row)
}

// Update patches the poster-editable fields of one post and replaces the
// matching cached entry in place.
func (s *JobPosts) Update(ctx context.Context, id int64, in ports.UpdateJobPostInput) *domain.JobPost {
	patch := map[string]any{
		"job_name":        in.JobName,
		"job_description": in.JobDescription,
		"monthly_rate":    in.MonthlyRate,
		"job_link":        nullable(in.JobLink),
		"job_type":        in.JobType,
		"imageurl":        nullable(in.ImageURL),
	}
	filters := []ports.Eq{{Column: "id", Value: id}}
	return s.update(ctx, "update", patch, filters, func(p domain.JobPost) bool { return p.ID == id })
}

// Delete removes the post remotely, then drops exactly the entry with that
// id from the cache.
func (s *JobPosts) Delete(ctx context.Context, id int64) bool {
	filters := []ports.Eq{{Column: "id", Value: id}}
	return s.deleteWhere(ctx, "delete", filters, func(p domain.JobPost) bool { return p.ID == id })
}

// ByID is the synchronous cache lookup (no network, ever).
func (s *JobPosts) ByID(id int64) *domain.JobPost {
	return s.find(func(p domain.JobPost) bool { return p.ID == id })
}

// nullable maps an empty optional field to an explicit null so the backend
// stores NULL instead of an empty string.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
