package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"fundcircle-backend/internal/usecase/auth"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps login sessions in Redis so they survive API restarts and
// can be revoked by deleting the key.
type SessionStore struct{ rdb *redis.Client }

func NewSessionStore(rdb *redis.Client) *SessionStore { return &SessionStore{rdb: rdb} }

var _ auth.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) Put(ctx context.Context, sess *auth.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKeyPrefix+sess.TokenID, payload, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, tokenID string) (*auth.Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKeyPrefix+tokenID).Bytes()
	if err != nil {
		return nil, err
	}
	var sess auth.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+tokenID).Err()
}
