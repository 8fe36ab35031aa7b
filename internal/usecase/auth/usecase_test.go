package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "fundcircle-backend/internal/domain/user"
	"fundcircle-backend/internal/testutil/sessionmock"
	"fundcircle-backend/internal/testutil/usermock"
	"fundcircle-backend/internal/usecase/auth"
)

const testSecret = "test-signing-secret"

func approvedAdmin() *domain.User {
	return &domain.User{
		UserID:      "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Name:        "Asha Rahman",
		Email:       "asha@example.com",
		Role:        domain.RoleAdmin,
		Status:      domain.StatusApproved,
		Designation: "Treasurer",
	}
}

func newAuth(users domain.Repository, store auth.SessionStore) *auth.Usecase {
	return auth.NewUsecase(users, store, testSecret, time.Hour)
}

func TestUsecase_Login(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		userErr error
		wantErr error
	}{
		{
			name: "approved user logs in",
			user: approvedAdmin(),
		},
		{
			name:    "unknown email-role pair",
			userErr: errors.New("no rows"),
			wantErr: auth.ErrInvalidCredentials,
		},
		{
			name: "pending signup blocked",
			user: func() *domain.User {
				u := approvedAdmin()
				u.Status = domain.StatusPending
				return u
			}(),
			wantErr: auth.ErrPendingApproval,
		},
		{
			name: "rejected signup blocked",
			user: func() *domain.User {
				u := approvedAdmin()
				u.Status = domain.StatusRejected
				return u
			}(),
			wantErr: auth.ErrAccessDenied,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := &usermock.Repo{
				GetByEmailAndRoleFn: func(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
					if tc.userErr != nil {
						return nil, tc.userErr
					}
					return tc.user, nil
				},
			}
			store := sessionmock.New()
			u := newAuth(users, store)

			token, sess, err := u.Login(context.Background(), "asha@example.com", domain.RoleAdmin)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v, got %v", tc.wantErr, err)
				}
				if store.Len() != 0 {
					t.Fatalf("failed login must not leave a session behind")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if token == "" {
				t.Fatalf("empty token")
			}
			if sess.UserID != tc.user.UserID || sess.Role != tc.user.Role || sess.Designation != tc.user.Designation {
				t.Fatalf("session snapshot mismatch: %+v", sess)
			}
			if store.Len() != 1 {
				t.Fatalf("session not stored")
			}
		})
	}
}

func TestUsecase_Resolve(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailAndRoleFn: func(context.Context, string, domain.Role) (*domain.User, error) {
			return approvedAdmin(), nil
		},
	}
	store := sessionmock.New()
	u := newAuth(users, store)

	token, sess, err := u.Login(context.Background(), "asha@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	t.Run("valid token resolves to its snapshot", func(t *testing.T) {
		got, err := u.Resolve(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.TokenID != sess.TokenID || got.UserID != sess.UserID {
			t.Fatalf("resolved wrong session: %+v", got)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		if _, err := u.Resolve(context.Background(), "not.a.jwt"); !errors.Is(err, auth.ErrInvalidToken) {
			t.Fatalf("want auth.ErrInvalidToken, got %v", err)
		}
	})

	t.Run("token signed with another secret rejected", func(t *testing.T) {
		other := auth.NewUsecase(users, sessionmock.New(), "different-secret", time.Hour)
		otherToken, _, err := other.Login(context.Background(), "asha@example.com", domain.RoleAdmin)
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if _, err := u.Resolve(context.Background(), otherToken); !errors.Is(err, auth.ErrInvalidToken) {
			t.Fatalf("want auth.ErrInvalidToken, got %v", err)
		}
	})

	t.Run("logout kills the token before its expiry", func(t *testing.T) {
		if err := u.Logout(context.Background(), sess.TokenID); err != nil {
			t.Fatalf("logout: %v", err)
		}
		if _, err := u.Resolve(context.Background(), token); !errors.Is(err, auth.ErrSessionExpired) {
			t.Fatalf("want auth.ErrSessionExpired, got %v", err)
		}
	})
}

func TestUsecase_Login_SnapshotIsolation(t *testing.T) {
	usr := approvedAdmin()
	users := &usermock.Repo{
		GetByEmailAndRoleFn: func(context.Context, string, domain.Role) (*domain.User, error) {
			return usr, nil
		},
	}
	u := newAuth(users, sessionmock.New())

	token, _, err := u.Login(context.Background(), "asha@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// a rename after login is invisible to the live session
	usr.Name = "Renamed"
	got, err := u.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Name != "Asha Rahman" {
		t.Fatalf("session must be a point-in-time snapshot, got %q", got.Name)
	}
}
