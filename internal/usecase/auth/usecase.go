package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domain "fundcircle-backend/internal/domain/user"
	"fundcircle-backend/pkg/id"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account is pending approval")
	ErrAccessDenied       = errors.New("access request was declined")
	ErrSessionExpired     = errors.New("session expired or revoked")
	ErrInvalidToken       = errors.New("invalid session token")
)

// Session is the user snapshot bound at login. It is deliberately not a live
// reference: profile edits made after login are invisible until re-login.
type Session struct {
	TokenID     string      `json:"token_id"`
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	Designation string      `json:"designation,omitempty"`
}

// SessionStore holds live sessions keyed by token id.
type SessionStore interface {
	Put(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*Session, error)
	Delete(ctx context.Context, tokenID string) error
}

type Usecase struct {
	users    domain.Repository
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
}

func NewUsecase(users domain.Repository, sessions SessionStore, secret string, ttl time.Duration) *Usecase {
	return &Usecase{users: users, sessions: sessions, secret: []byte(secret), ttl: ttl}
}

type claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the (email, role) pair against the user set. A real user with
// the wrong role selected looks the same as a nonexistent one; the lookup key
// is the pair. On success it mints a bearer token and stores the snapshot
// session under the token id.
func (u *Usecase) Login(ctx context.Context, email string, role domain.Role) (string, *Session, error) {
	usr, err := u.users.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	switch usr.Status {
	case domain.StatusPending:
		return "", nil, ErrPendingApproval
	case domain.StatusRejected:
		return "", nil, ErrAccessDenied
	}

	sess := &Session{
		TokenID:     id.NewID32(),
		UserID:      usr.UserID,
		Name:        usr.Name,
		Email:       usr.Email,
		Role:        usr.Role,
		Designation: usr.Designation,
	}
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: usr.UserID,
		Role:   string(usr.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   usr.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.ttl)),
		},
	})
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", nil, err
	}
	if err := u.sessions.Put(ctx, sess, u.ttl); err != nil {
		return "", nil, err
	}
	return signed, sess, nil
}

// Resolve validates a bearer token and returns the session snapshot it is
// bound to. A valid token whose session was deleted (logout) is expired.
func (u *Usecase) Resolve(ctx context.Context, tokenString string) (*Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	sess, err := u.sessions.Get(ctx, c.ID)
	if err != nil {
		return nil, ErrSessionExpired
	}
	return sess, nil
}

// Logout tears the session down; the token is dead from here on even if its
// expiry has not passed.
func (u *Usecase) Logout(ctx context.Context, tokenID string) error {
	return u.sessions.Delete(ctx, tokenID)
}
