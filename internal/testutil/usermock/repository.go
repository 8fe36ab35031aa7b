package usermock

import (
	"context"

	domain "fundcircle-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn               func(ctx context.Context, u *domain.User) error
	GetByUserIDFn          func(ctx context.Context, userID string) (*domain.User, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn           func(ctx context.Context, email string) (*domain.User, error)
	GetByEmailAndRoleFn    func(ctx context.Context, email string, role domain.Role) (*domain.User, error)
	ListAllFn              func(ctx context.Context) ([]*domain.User, error)
	SaveFn                 func(ctx context.Context, u *domain.User) error
	ReplaceAllFn           func(ctx context.Context, users []*domain.User) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByUserIDForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	if m.GetByEmailAndRoleFn != nil {
		return m.GetByEmailAndRoleFn(ctx, email, role)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAll(ctx context.Context) ([]*domain.User, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
func (m *Repo) ReplaceAll(ctx context.Context, users []*domain.User) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, users)
	}
	return nil
}
