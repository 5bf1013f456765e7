package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// TTL is the fixed session lifetime. Sessions are not refreshed on
	// activity; a login is good for exactly this long.
	TTL = 24 * time.Hour

	// CookieName is the cookie holding the opaque session token.
	CookieName = "session_token"

	keyPrefix = "session:"
)

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("no session")

// Manager defines session storage operations.
type Manager interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Get(ctx context.Context, token string) (uuid.UUID, error)
	Delete(ctx context.Context, token string) error
}

// Store maps opaque tokens to user IDs in Redis.
type Store struct {
	client *redis.Client
}

// Ensure Store implements Manager
var _ Manager = (*Store)(nil)

// New creates a Redis-backed session store.
func New(addr, password string, db int) *Store {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Store{client: redis.NewClient(opts)}
}

// Create binds a fresh opaque token to the user and returns it.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, userID.String(), TTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to the bound user ID. Missing, expired and
// unreadable sessions all read as ErrNoSession, so store trouble
// degrades to logged-out rather than a server error.
func (s *Store) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		return uuid.Nil, ErrNoSession
	}
	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrNoSession
	}
	return id, nil
}

// Delete removes the session bound to token.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
