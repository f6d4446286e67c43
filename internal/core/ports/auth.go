package ports

import (
	"context"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
)

// AuthAPI is the remote authentication surface (sign-up, password grant,
// revoke, user record retrieval and metadata updates). Credential checks
// and token issuance happen entirely on the remote side.
type AuthAPI interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*domain.User, error)
	UpdateUser(ctx context.Context, accessToken string, metadata map[string]any) (*domain.User, error)
}

// SessionCache persists the single active session across process restarts
// so Initialize can restore it. Load returns (nil, nil) when no session is
// stored.
type SessionCache interface {
	Save(ctx context.Context, s *domain.Session) error
	Load(ctx context.Context) (*domain.Session, error)
	Clear(ctx context.Context) error
}
