package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mango_errors "mangosense/pkg/errors"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Session key pattern:
// - session:{session_id} - TTL-bound login session, deleted on logout

// Session is the server-side state behind a login cookie. Validity is
// entirely a function of the key still existing in Redis.
type Session struct {
	ID        string    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore keeps login sessions in Redis with a TTL.
type SessionStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewSessionStore(client *goredis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores a new session and returns its identifier.
func (s *SessionStore) Create(ctx context.Context, userID uuid.UUID, email string) (string, error) {
	session := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return session.ID, nil
}

// Get looks up a session by id. Returns ErrUnauthorized when the session is
// missing or expired.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == goredis.Nil {
		return Session{}, mango_errors.ErrUnauthorized
	}
	if err != nil {
		return Session{}, err
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Delete terminates a session. Deleting a session that is already gone
// reports ErrUnauthorized so logout without a live session fails cleanly.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return mango_errors.ErrUnauthorized
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
