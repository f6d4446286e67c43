package domain

// Application is a job application submitted by a user. At most one
// application exists per (user_id, job_id) pair; resubmitting overwrites
// the previous row (see store.Applications.Submit).
//
// Timestamp is unix seconds, refreshed on every (re)submission, and is the
// recency key the board sorts by.
type Application struct {
	ID         int64  `json:"id"`
	JobID      int64  `json:"job_id"`
	UserID     string `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Education  string `json:"education"`
	Position   string `json:"position"`
	Resume     string `json:"resume,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty"`
	References string `json:"references,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}
