package loanmock

import (
	"context"

	domain "fundcircle-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListAllFn              func(ctx context.Context) ([]*domain.Loan, error)
	ListByMemberIDFn       func(ctx context.Context, memberID string) ([]*domain.Loan, error)
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	ReplaceInstallmentsFn  func(ctx context.Context, l *domain.Loan, installments []domain.Installment) error
	DeleteByLoanIDFn       func(ctx context.Context, loanID string) error
	ReplaceAllFn           func(ctx context.Context, loans []*domain.Loan) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListAll(ctx context.Context) ([]*domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
func (m *Repo) ListByMemberID(ctx context.Context, memberID string) ([]*domain.Loan, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) ReplaceInstallments(ctx context.Context, l *domain.Loan, installments []domain.Installment) error {
	if m.ReplaceInstallmentsFn != nil {
		return m.ReplaceInstallmentsFn(ctx, l, installments)
	}
	return nil
}
func (m *Repo) DeleteByLoanID(ctx context.Context, loanID string) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}
func (m *Repo) ReplaceAll(ctx context.Context, loans []*domain.Loan) error {
	if m.ReplaceAllFn != nil {
		return m.ReplaceAllFn(ctx, loans)
	}
	return nil
}
