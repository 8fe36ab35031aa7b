package requestmock

import (
	"context"

	domain "fundcircle-backend/internal/domain/loanrequest"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.LoanRequest) error
	GetByRequestIDFn          func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByRequestIDForUpdateFn func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	ListAllFn                 func(ctx context.Context) ([]*domain.LoanRequest, error)
	ListByMemberIDFn          func(ctx context.Context, memberID string) ([]*domain.LoanRequest, error)
	SaveFn                    func(ctx context.Context, r *domain.LoanRequest) error
	ReplaceAllFn              func(ctx context.Context, requests []*domain.LoanRequest) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAll(ctx context.Context) ([]*domain.LoanRequest, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByMemberID(ctx context.Context, memberID string) ([]*domain.LoanRequest, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, r *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *Repo) ReplaceAll(ctx context.Context, requests []*domain.LoanRequest) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, requests)
	}
	return nil
}
