package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianglenncurilan/web-quickwork/internal/api/metrics"
	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
	"github.com/ianglenncurilan/web-quickwork/internal/core/ports"
)

const storeSession = "session"

// Session holds the single active user and session of this process. Auth
// itself is remote: credentials and tokens live with the auth service, and
// this store only mirrors the outcome. The same absorbed-error policy as
// the collections applies.
type Session struct {
	mu      sync.RWMutex
	user    *domain.User
	session *domain.Session
	loading bool
	err     error

	auth    ports.AuthAPI
	cache   ports.SessionCache // optional; nil disables persistence
	timeout time.Duration
	log     zerolog.Logger
	now     func() time.Time
}

func NewSession(auth ports.AuthAPI, cache ports.SessionCache, log zerolog.Logger, timeout time.Duration) *Session {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Session{
		auth:    auth,
		cache:   cache,
		timeout: timeout,
		log:     log.With().Str("store", storeSession).Logger(),
		now:     time.Now,
	}
}

func (s *Session) begin() time.Time {
	s.mu.Lock()
	s.loading = true
	s.err = nil
	s.mu.Unlock()
	return time.Now()
}

func (s *Session) finish(op string, start time.Time, err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err
	s.mu.Unlock()

	metrics.StoreOpsTotal.WithLabelValues(storeSession, op).Inc()
	metrics.StoreOpDuration.WithLabelValues(storeSession, op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues(storeSession, op).Inc()
		s.log.Error().Err(err).Str("op", op).Msg("session operation failed")
	}
}

func (s *Session) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Initialize restores a persisted session, if one exists and has not
// expired, and fetches the user record it belongs to. Without a session
// cache, or without a stored session, both fields stay nil.
func (s *Session) Initialize(ctx context.Context) {
	start := s.begin()
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if s.cache == nil {
		s.finish("initialize", start, nil)
		return
	}

	sess, err := s.cache.Load(ctx)
	if err != nil {
		s.finish("initialize", start, err)
		return
	}
	if sess == nil {
		s.finish("initialize", start, nil)
		return
	}
	if sess.Expired(s.now().Unix()) {
		_ = s.cache.Clear(ctx)
		s.finish("initialize", start, nil)
		return
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	user, err := s.auth.GetUser(ctx, sess.AccessToken)
	if err != nil {
		s.finish("initialize", start, err)
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.finish("initialize", start, nil)
}

// SignIn authenticates with email/password. On success both session and
// user are populated and the session is persisted; on failure nil comes
// back and Err carries the message.
func (s *Session) SignIn(ctx context.Context, email, password string) *domain.Session {
	start := s.begin()
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	sess, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.finish("sign_in", start, err)
		return nil
	}

	s.adopt(ctx, sess)
	s.finish("sign_in", start, nil)
	return sess
}

// SignUp registers a new account with optional profile metadata; otherwise
// identical to SignIn.
func (s *Session) SignUp(ctx context.Context, email, password string, metadata map[string]any) *domain.Session {
	start := s.begin()
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	sess, err := s.auth.SignUp(ctx, email, password, metadata)
	if err != nil {
		s.finish("sign_up", start, err)
		return nil
	}

	s.adopt(ctx, sess)
	s.finish("sign_up", start, nil)
	return sess
}

// SignOut revokes the session remotely and clears the local user and
// session regardless of what the revoke returned: after this call the
// process is signed out even if the backend was unreachable.
func (s *Session) SignOut(ctx context.Context) bool {
	start := s.begin()
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	s.mu.RLock()
	var token string
	if s.session != nil {
		token = s.session.AccessToken
	}
	s.mu.RUnlock()

	var remoteErr error
	if token != "" {
		remoteErr = s.auth.SignOut(ctx, token)
	}

	s.mu.Lock()
	s.user = nil
	s.session = nil
	s.mu.Unlock()
	if s.cache != nil {
		_ = s.cache.Clear(ctx)
	}

	s.finish("sign_out", start, remoteErr)
	return remoteErr == nil
}

// UpdateProfile merges metadata fields into the remote user record and
// replaces the local user with the result.
func (s *Session) UpdateProfile(ctx context.Context, patch map[string]any) *domain.User {
	start := s.begin()
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	s.mu.RLock()
	var token string
	if s.session != nil {
		token = s.session.AccessToken
	}
	s.mu.RUnlock()

	if token == "" {
		s.finish("update_profile", start, domain.ErrNotAuthenticated)
		return nil
	}

	user, err := s.auth.UpdateUser(ctx, token, patch)
	if err != nil {
		s.finish("update_profile", start, err)
		return nil
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	s.finish("update_profile", start, nil)
	return user
}

// adopt installs a fresh session/user pair and persists the session.
// Persistence failures only degrade restart behaviour, so they are logged
// and not surfaced.
func (s *Session) adopt(ctx context.Context, sess *domain.Session) {
	s.mu.Lock()
	s.session = sess
	s.user = sess.User
	s.mu.Unlock()

	if s.cache != nil {
		if err := s.cache.Save(ctx, sess); err != nil {
			s.log.Warn().Err(err).Msg("failed to persist session")
		}
	}
}

// IsAuthenticated reports whether a user is signed in.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// UserID returns the signed-in user's id, empty when signed out.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.ID
}

// UserEmail returns the signed-in user's email, empty when signed out.
func (s *Session) UserEmail() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Email
}

// UserMetadata returns the profile metadata, an empty map when absent.
func (s *Session) UserMetadata() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.user.Metadata == nil {
		return map[string]any{}
	}
	return s.user.Metadata
}

// User returns the signed-in user record, nil when signed out.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Session returns the active session, nil when signed out.
func (s *Session) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Loading reports whether an operation is in flight.
func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last operation's failure, nil after a success.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
