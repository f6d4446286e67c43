package domain

import "time"

// User is the auth service's view of an account. Metadata is the free-form
// profile mapping (first name, role, avatar, ...) attached at sign-up and
// merged by profile updates.
type User struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Metadata  map[string]any `json:"user_metadata"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Session is the proof of authentication issued by the auth service.
// ExpiresAt is unix seconds.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

// Expired reports whether the session's access token is past its expiry.
// A zero ExpiresAt is treated as non-expiring (the auth service always
// sets it in practice).
func (s *Session) Expired(nowUnix int64) bool {
	return s.ExpiresAt != 0 && s.ExpiresAt <= nowUnix
}
