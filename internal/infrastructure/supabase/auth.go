package supabase

import (
	"context"
	"net/http"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
)

// AuthClient is the authentication sub-interface of the backend handle.
// It talks to the GoTrue endpoints under /auth/v1; tokens are issued and
// revoked remotely, never minted here.
type AuthClient struct {
	c *Client
}

type credentials struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

// SignUp registers a new account with optional free-form profile metadata
// and returns the fresh session.
func (a *AuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.Session, error) {
	var s domain.Session
	body := credentials{Email: email, Password: password, Data: metadata}
	if err := a.c.do(ctx, http.MethodPost, a.c.baseURL+"/auth/v1/signup", nil, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignInWithPassword exchanges credentials for a session (password grant).
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error) {
	var s domain.Session
	body := credentials{Email: email, Password: password}
	url := a.c.baseURL + "/auth/v1/token?grant_type=password"
	if err := a.c.do(ctx, http.MethodPost, url, nil, body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SignOut revokes the given access token.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	return a.c.do(ctx, http.MethodPost, a.c.baseURL+"/auth/v1/logout", headers, nil, nil)
}

// GetUser retrieves the user record the access token belongs to.
func (a *AuthClient) GetUser(ctx context.Context, accessToken string) (*domain.User, error) {
	var u domain.User
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	if err := a.c.do(ctx, http.MethodGet, a.c.baseURL+"/auth/v1/user", headers, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser merges metadata fields into the user record and returns the
// updated record. Fields absent from metadata keep their current values.
func (a *AuthClient) UpdateUser(ctx context.Context, accessToken string, metadata map[string]any) (*domain.User, error) {
	var u domain.User
	headers := map[string]string{"Authorization": "Bearer " + accessToken}
	body := map[string]any{"data": metadata}
	if err := a.c.do(ctx, http.MethodPut, a.c.baseURL+"/auth/v1/user", headers, body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
