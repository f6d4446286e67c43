package domain

import "time"

// Rating is a score a user gave a job post. The schema stores the numeric
// score in the rated_at column; the name is historical and kept to match
// the remote table. At most one rating exists per (user_id, job_id) pair.
type Rating struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	JobID     int64     `json:"job_id"`
	RatedAt   float64   `json:"rated_at"`
	CreatedAt time.Time `json:"created_at"`
}
