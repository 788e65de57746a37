package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studiobook/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-progress wizard sessions and the per-session confirm
// lock. Sessions expire on their own when a customer abandons the wizard.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	AcquireConfirmLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseConfirmLock(ctx context.Context, sessionID string) error
}

const (
	sessionTTL     = 30 * time.Minute
	confirmLockTTL = time.Minute
)

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns a SessionStore backed by the given Redis
// client.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(id string) string     { return "booking-session:" + id }
func confirmLockKey(id string) string { return "confirm-lock:" + id }

func (s *redisSessionStore) Save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) AcquireConfirmLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, confirmLockKey(sessionID), "1", confirmLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire confirm lock: %w", err)
	}
	return ok, nil
}

func (s *redisSessionStore) ReleaseConfirmLock(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, confirmLockKey(sessionID)).Err()
}
