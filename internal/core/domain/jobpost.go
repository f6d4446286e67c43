package domain

import "time"

// JobType enumerates the posting categories shown on the board.
const (
	JobTypeFullTime  = "full-time"
	JobTypePartTime  = "part-time"
	JobTypeOneTime   = "one-time"
	JobTypeFreelance = "freelance"
)

// JobPost is a job listing created by a poster. The JSON tags mirror the
// remote job_posts columns, so the struct round-trips through the data API
// unchanged. The id is assigned by the backend on insert.
type JobPost struct {
	ID             int64     `json:"id"`
	JobName        string    `json:"job_name"`
	JobDescription string    `json:"job_description"`
	UserID         string    `json:"user_id"`
	MonthlyRate    float64   `json:"monthly_rate"`
	JobLink        string    `json:"job_link,omitempty"`
	JobType        string    `json:"job_type"`
	ImageURL       string    `json:"imageurl,omitempty"`
	PostedAt       time.Time `json:"posted_at"`
	CreatedAt      time.Time `json:"created_at"`
}
