package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
)

const sessionKey = "quickwork:session"

// fallbackTTL bounds a persisted session whose expiry is missing or
// already computed as zero, so stale sessions cannot live forever.
const fallbackTTL = time.Hour

// SessionCache persists the single active session so it survives process
// restarts. The entry expires together with the access token.
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache creates a SessionCache wrapping the given Redis client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

// Save stores the session, expiring when its access token does.
func (c *SessionCache) Save(ctx context.Context, s *domain.Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := fallbackTTL
	if s.ExpiresAt != 0 {
		if until := time.Until(time.Unix(s.ExpiresAt, 0)); until > 0 {
			ttl = until
		}
	}
	return c.client.Set(ctx, sessionKey, payload, ttl).Err()
}

// Load retrieves the persisted session, (nil, nil) when none is stored.
func (c *SessionCache) Load(ctx context.Context) (*domain.Session, error) {
	payload, err := c.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Clear drops the persisted session.
func (c *SessionCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, sessionKey).Err()
}
