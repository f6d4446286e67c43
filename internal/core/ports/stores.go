package ports

import (
	"context"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
)

// CreateJobPostInput carries all data needed to create a job post.
type CreateJobPostInput struct {
	JobName        string
	JobDescription string
	UserID         string
	MonthlyRate    float64
	JobLink        string
	JobType        string
	ImageURL       string
}

// UpdateJobPostInput carries the poster-editable fields of a job post.
type UpdateJobPostInput struct {
	JobName        string
	JobDescription string
	MonthlyRate    float64
	JobLink        string
	JobType        string
	ImageURL       string
}

// SubmitApplicationInput carries one application form submission.
type SubmitApplicationInput struct {
	JobID       int64
	UserID      string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	Education   string
	Position    string
	Resume      string
	CoverLetter string
	References  string
}

// SubmitRatingInput carries one rating submission.
type SubmitRatingInput struct {
	UserID string
	JobID  int64
	Score  float64
}

// JobPostStore is the cached job_posts collection.
//
// Store operations never return an error: failures are absorbed, a
// type-appropriate sentinel comes back (nil, false, empty slice) and the
// failure message is available via Err until the next operation.
type JobPostStore interface {
	FetchAll(ctx context.Context)
	FetchByUser(ctx context.Context, userID string) []domain.JobPost
	FetchByID(ctx context.Context, id int64) *domain.JobPost
	Create(ctx context.Context, in CreateJobPostInput) *domain.JobPost
	Update(ctx context.Context, id int64, in UpdateJobPostInput) *domain.JobPost
	Delete(ctx context.Context, id int64) bool
	ByID(id int64) *domain.JobPost
	Items() []domain.JobPost
	Loading() bool
	Err() error
}

// ApplicationStore is the cached applications collection.
type ApplicationStore interface {
	FetchAll(ctx context.Context)
	FetchByUser(ctx context.Context, userID string) []domain.Application
	FetchByJob(ctx context.Context, jobID int64) []domain.Application
	Submit(ctx context.Context, in SubmitApplicationInput) *domain.Application
	ByJobID(jobID int64) *domain.Application
	GroupedByJob() map[int64][]domain.Application
	Items() []domain.Application
	Loading() bool
	Err() error
}

// RatingStore is the cached ratings collection.
type RatingStore interface {
	FetchAll(ctx context.Context)
	FetchByJob(ctx context.Context, jobID int64) []domain.Rating
	FetchByUser(ctx context.Context, userID string) []domain.Rating
	Submit(ctx context.Context, in SubmitRatingInput) *domain.Rating
	AverageRating(jobID int64) float64
	ByUserAndJob(userID string, jobID int64) *domain.Rating
	HasRated(userID string, jobID int64) bool
	Items() []domain.Rating
	Loading() bool
	Err() error
}

// SessionStore holds the single active user/session of this process.
type SessionStore interface {
	Initialize(ctx context.Context)
	SignIn(ctx context.Context, email, password string) *domain.Session
	SignUp(ctx context.Context, email, password string, metadata map[string]any) *domain.Session
	SignOut(ctx context.Context) bool
	UpdateProfile(ctx context.Context, patch map[string]any) *domain.User
	IsAuthenticated() bool
	UserID() string
	UserEmail() string
	UserMetadata() map[string]any
	User() *domain.User
	Session() *domain.Session
	Loading() bool
	Err() error
}
