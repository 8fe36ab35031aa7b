package depositmock

import (
	"context"

	domain "fundcircle-backend/internal/domain/deposit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, d *domain.Deposit) error
	GetByDepositIDFn    func(ctx context.Context, depositID string) (*domain.Deposit, error)
	ListAllFn           func(ctx context.Context) ([]*domain.Deposit, error)
	ListByMemberIDFn    func(ctx context.Context, memberID string) ([]*domain.Deposit, error)
	SaveFn              func(ctx context.Context, d *domain.Deposit) error
	DeleteByDepositIDFn func(ctx context.Context, depositID string) error
	ReplaceAllFn        func(ctx context.Context, deposits []*domain.Deposit) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, d *domain.Deposit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetByDepositID(ctx context.Context, depositID string) (*domain.Deposit, error) {
	if m.GetByDepositIDFn != nil {
		return m.GetByDepositIDFn(ctx, depositID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAll(ctx context.Context) ([]*domain.Deposit, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByMemberID(ctx context.Context, memberID string) ([]*domain.Deposit, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, d *domain.Deposit) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
func (m *Repo) DeleteByDepositID(ctx context.Context, depositID string) error {
	if m.DeleteByDepositIDFn != nil {
		return m.DeleteByDepositIDFn(ctx, depositID)
	}
	return nil
}
func (m *Repo) ReplaceAll(ctx context.Context, deposits []*domain.Deposit) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, deposits)
	}
	return nil
}
