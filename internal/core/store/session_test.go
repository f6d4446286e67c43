package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
)

type stubAuth struct {
	signUpFn  func(email, password string, metadata map[string]any) (*domain.Session, error)
	signInFn  func(email, password string) (*domain.Session, error)
	signOutFn func(token string) error
	getUserFn func(token string) (*domain.User, error)
	updateFn  func(token string, metadata map[string]any) (*domain.User, error)

	signOutCalls int
}

func (a *stubAuth) SignUp(_ context.Context, email, password string, metadata map[string]any) (*domain.Session, error) {
	if a.signUpFn == nil {
		return nil, errors.New("sign up not stubbed")
	}
	return a.signUpFn(email, password, metadata)
}

func (a *stubAuth) SignInWithPassword(_ context.Context, email, password string) (*domain.Session, error) {
	if a.signInFn == nil {
		return nil, errors.New("sign in not stubbed")
	}
	return a.signInFn(email, password)
}

func (a *stubAuth) SignOut(_ context.Context, token string) error {
	a.signOutCalls++
	if a.signOutFn == nil {
		return nil
	}
	return a.signOutFn(token)
}

func (a *stubAuth) GetUser(_ context.Context, token string) (*domain.User, error) {
	if a.getUserFn == nil {
		return nil, errors.New("get user not stubbed")
	}
	return a.getUserFn(token)
}

func (a *stubAuth) UpdateUser(_ context.Context, token string, metadata map[string]any) (*domain.User, error) {
	if a.updateFn == nil {
		return nil, errors.New("update user not stubbed")
	}
	return a.updateFn(token, metadata)
}

// memorySessionCache is an in-process ports.SessionCache.
type memorySessionCache struct {
	stored  *domain.Session
	loadErr error
	saveErr error
}

func (c *memorySessionCache) Save(_ context.Context, s *domain.Session) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.stored = s
	return nil
}

func (c *memorySessionCache) Load(_ context.Context) (*domain.Session, error) {
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return c.stored, nil
}

func (c *memorySessionCache) Clear(_ context.Context) error {
	c.stored = nil
	return nil
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		Email:    "ada@example.com",
		Metadata: map[string]any{"first_name": "Ada"},
	}
}

func testSession(expiresAt int64) *domain.Session {
	return &domain.Session{
		AccessToken:  "token-abc",
		TokenType:    "bearer",
		ExpiresIn:    3600,
		ExpiresAt:    expiresAt,
		RefreshToken: "refresh-abc",
		User:         testUser(),
	}
}

func TestSignIn_PopulatesStateAndPersists(t *testing.T) {
	auth := &stubAuth{
		signInFn: func(email, password string) (*domain.Session, error) {
			if email != "ada@example.com" || password != "pw" {
				t.Fatalf("unexpected credentials: %s/%s", email, password)
			}
			return testSession(time.Now().Add(time.Hour).Unix()), nil
		},
	}
	cache := &memorySessionCache{}
	s := NewSession(auth, cache, zerolog.Nop(), time.Second)

	sess := s.SignIn(context.Background(), "ada@example.com", "pw")
	if sess == nil {
		t.Fatalf("sign in failed: %v", s.Err())
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
	if s.UserID() != testUser().ID {
		t.Fatalf("unexpected user id %q", s.UserID())
	}
	if s.UserEmail() != "ada@example.com" {
		t.Fatalf("unexpected email %q", s.UserEmail())
	}
	if cache.stored == nil || cache.stored.AccessToken != "token-abc" {
		t.Fatalf("session must be persisted")
	}
}

func TestSignIn_FailureLeavesSignedOut(t *testing.T) {
	auth := &stubAuth{
		signInFn: func(string, string) (*domain.Session, error) {
			return nil, errors.New("invalid login credentials")
		},
	}
	s := NewSession(auth, nil, zerolog.Nop(), time.Second)

	if sess := s.SignIn(context.Background(), "ada@example.com", "wrong"); sess != nil {
		t.Fatalf("expected nil session")
	}
	if s.IsAuthenticated() {
		t.Fatalf("failed sign-in must not authenticate")
	}
	if s.Err() == nil {
		t.Fatalf("expected recorded error")
	}
}

func TestSignIn_PersistFailureIsNotFatal(t *testing.T) {
	auth := &stubAuth{
		signInFn: func(string, string) (*domain.Session, error) {
			return testSession(time.Now().Add(time.Hour).Unix()), nil
		},
	}
	cache := &memorySessionCache{saveErr: errors.New("redis down")}
	s := NewSession(auth, cache, zerolog.Nop(), time.Second)

	if sess := s.SignIn(context.Background(), "ada@example.com", "pw"); sess == nil {
		t.Fatalf("persist failure must not fail the sign-in: %v", s.Err())
	}
	if s.Err() != nil {
		t.Fatalf("persist failure must not be recorded, got %v", s.Err())
	}
}

func TestSignUp_PopulatesState(t *testing.T) {
	auth := &stubAuth{
		signUpFn: func(email, password string, metadata map[string]any) (*domain.Session, error) {
			if metadata["first_name"] != "Ada" {
				t.Fatalf("metadata not forwarded: %+v", metadata)
			}
			return testSession(time.Now().Add(time.Hour).Unix()), nil
		},
	}
	s := NewSession(auth, nil, zerolog.Nop(), time.Second)

	sess := s.SignUp(context.Background(), "ada@example.com", "pw", map[string]any{"first_name": "Ada"})
	if sess == nil {
		t.Fatalf("sign up failed: %v", s.Err())
	}
	if !s.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
}

func TestSignOut_ClearsStateEvenWhenRevokeFails(t *testing.T) {
	auth := &stubAuth{
		signInFn: func(string, string) (*domain.Session, error) {
			return testSession(time.Now().Add(time.Hour).Unix()), nil
		},
		signOutFn: func(string) error {
			return errors.New("backend unreachable")
		},
	}
	cache := &memorySessionCache{}
	s := NewSession(auth, cache, zerolog.Nop(), time.Second)
	s.SignIn(context.Background(), "ada@example.com", "pw")

	if s.SignOut(context.Background()) {
		t.Fatalf("expected false when revoke fails")
	}
	if s.IsAuthenticated() || s.User() != nil || s.Session() != nil {
		t.Fatalf("sign out must clear local state regardless of the revoke")
	}
	if cache.stored != nil {
		t.Fatalf("persisted session must be cleared")
	}
}

func TestSignOut_WhenSignedOutIsANoOpRemotely(t *testing.T) {
	auth := &stubAuth{}
	s := NewSession(auth, nil, zerolog.Nop(), time.Second)

	if !s.SignOut(context.Background()) {
		t.Fatalf("signing out while signed out must succeed")
	}
	if auth.signOutCalls != 0 {
		t.Fatalf("no token, no revoke call")
	}
}

func TestInitialize_RestoresPersistedSession(t *testing.T) {
	auth := &stubAuth{
		getUserFn: func(token string) (*domain.User, error) {
			if token != "token-abc" {
				t.Fatalf("unexpected token %q", token)
			}
			return testUser(), nil
		},
	}
	cache := &memorySessionCache{stored: testSession(time.Now().Add(time.Hour).Unix())}
	s := NewSession(auth, cache, zerolog.Nop(), time.Second)

	s.Initialize(context.Background())

	if !s.IsAuthenticated() {
		t.Fatalf("expected restored session, err %v", s.Err())
	}
	if s.UserID() != testUser().ID {
		t.Fatalf("unexpected user id %q", s.UserID())
	}
}

func TestInitialize_DropsExpiredSession(t *testing.T) {
	auth := &stubAuth{}
	cache := &memorySessionCache{stored: testSession(time.Now().Add(-time.Hour).Unix())}
	s := NewSession(auth, cache, zerolog.Nop(), time.Second)

	s.Initialize(context.Background())

	if s.IsAuthenticated() {
		t.Fatalf("expired session must not authenticate")
	}
	if cache.stored != nil {
		t.Fatalf("expired session must be cleared from the cache")
	}
	if s.Err() != nil {
		t.Fatalf("expiry is not a failure, got %v", s.Err())
	}
}

func TestInitialize_WithoutCacheIsANoOp(t *testing.T) {
	s := NewSession(&stubAuth{}, nil, zerolog.Nop(), time.Second)

	s.Initialize(context.Background())

	if s.IsAuthenticated() || s.Err() != nil {
		t.Fatalf("no cache, nothing to restore")
	}
}

func TestUpdateProfile_RequiresASession(t *testing.T) {
	s := NewSession(&stubAuth{}, nil, zerolog.Nop(), time.Second)

	if user := s.UpdateProfile(context.Background(), map[string]any{"first_name": "Ada"}); user != nil {
		t.Fatalf("expected nil without a session")
	}
	if !errors.Is(s.Err(), domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", s.Err())
	}
}

func TestUpdateProfile_ReplacesLocalUser(t *testing.T) {
	auth := &stubAuth{
		signInFn: func(string, string) (*domain.Session, error) {
			return testSession(time.Now().Add(time.Hour).Unix()), nil
		},
		updateFn: func(token string, metadata map[string]any) (*domain.User, error) {
			u := testUser()
			u.Metadata = map[string]any{"first_name": metadata["first_name"]}
			return u, nil
		},
	}
	s := NewSession(auth, nil, zerolog.Nop(), time.Second)
	s.SignIn(context.Background(), "ada@example.com", "pw")

	user := s.UpdateProfile(context.Background(), map[string]any{"first_name": "Grace"})
	if user == nil {
		t.Fatalf("update failed: %v", s.Err())
	}
	if s.UserMetadata()["first_name"] != "Grace" {
		t.Fatalf("local user must reflect the update, got %+v", s.UserMetadata())
	}
}

func TestUserMetadata_EmptyMapWhenSignedOut(t *testing.T) {
	s := NewSession(&stubAuth{}, nil, zerolog.Nop(), time.Second)

	meta := s.UserMetadata()
	if meta == nil || len(meta) != 0 {
		t.Fatalf("expected empty map, got %#v", meta)
	}
}
