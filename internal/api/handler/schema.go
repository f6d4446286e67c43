package handler

// --- Auth ---

type registerRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=6"`
	Metadata map[string]any `json:"metadata"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Metadata map[string]any `json:"metadata" validate:"required"`
}

type sessionResponse struct {
	AccessToken  string        `json:"access_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
	ExpiresAt    int64         `json:"expires_at"`
	RefreshToken string        `json:"refresh_token"`
	User         *userResponse `json:"user,omitempty"`
}

type userResponse struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata"`
}

// --- Job posts ---

type createJobPostRequest struct {
	JobName        string  `json:"job_name" validate:"required"`
	JobDescription string  `json:"job_description" validate:"required"`
	MonthlyRate    float64 `json:"monthly_rate" validate:"gt=0"`
	JobLink        string  `json:"job_link"`
	JobType        string  `json:"job_type" validate:"required,oneof=full-time part-time one-time freelance"`
	ImageURL       string  `json:"imageurl"`
}

type updateJobPostRequest struct {
	JobName        string  `json:"job_name" validate:"required"`
	JobDescription string  `json:"job_description" validate:"required"`
	MonthlyRate    float64 `json:"monthly_rate" validate:"gt=0"`
	JobLink        string  `json:"job_link"`
	JobType        string  `json:"job_type" validate:"required,oneof=full-time part-time one-time freelance"`
	ImageURL       string  `json:"imageurl"`
}

type jobPostResponse struct {
	ID             int64   `json:"id"`
	JobName        string  `json:"job_name"`
	JobDescription string  `json:"job_description"`
	UserID         string  `json:"user_id"`
	MonthlyRate    float64 `json:"monthly_rate"`
	JobLink        string  `json:"job_link,omitempty"`
	JobType        string  `json:"job_type"`
	ImageURL       string  `json:"imageurl,omitempty"`
	PostedAt       string  `json:"posted_at"`
	CreatedAt      string  `json:"created_at"`
}

// --- Applications ---

type submitApplicationRequest struct {
	JobID       int64  `json:"job_id" validate:"required,gt=0"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Education   string `json:"education"`
	Position    string `json:"position"`
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter"`
	References  string `json:"references"`
}

type applicationResponse struct {
	ID          int64  `json:"id"`
	JobID       int64  `json:"job_id"`
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Education   string `json:"education"`
	Position    string `json:"position"`
	Resume      string `json:"resume,omitempty"`
	CoverLetter string `json:"cover_letter,omitempty"`
	References  string `json:"references,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// --- Ratings ---

type submitRatingRequest struct {
	JobID int64   `json:"job_id" validate:"required,gt=0"`
	Score float64 `json:"score" validate:"required,gte=1,lte=5"`
}

type ratingResponse struct {
	ID        int64   `json:"id"`
	UserID    string  `json:"user_id"`
	JobID     int64   `json:"job_id"`
	Score     float64 `json:"score"`
	CreatedAt string  `json:"created_at"`
}

type averageRatingResponse struct {
	JobID   int64   `json:"job_id"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Rated   bool    `json:"rated"`
}
