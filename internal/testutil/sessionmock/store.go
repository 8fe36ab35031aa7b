package sessionmock

import (
	"context"
	"sync"
	"time"

	"fundcircle-backend/internal/usecase/auth"
)

var _ auth.SessionStore = (*Store)(nil)

// Store is an in-memory auth.SessionStore for tests. TTLs are recorded but
// not enforced; expiry behavior belongs to the redis-backed store's tests.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*auth.Session
	TTLs     map[string]time.Duration
}

func New() *Store {
	return &Store{
		sessions: make(map[string]*auth.Session),
		TTLs:     make(map[string]time.Duration),
	}
}

func (s *Store) Put(ctx context.Context, sess *auth.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.TokenID] = sess
	s.TTLs[sess.TokenID] = ttl
	return nil
}

func (s *Store) Get(ctx context.Context, tokenID string) (*auth.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[tokenID]
	if !ok {
		return nil, auth.ErrSessionExpired
	}
	return sess, nil
}

func (s *Store) Delete(ctx context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenID)
	delete(s.TTLs, tokenID)
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
