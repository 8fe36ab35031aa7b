package loan

import "context"

type Repository interface {
	// Create persists the loan together with its installment set.
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the duration of the
	// enclosing tx so concurrent installment payments serialize.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListAll(ctx context.Context) ([]*Loan, error)
	ListByMemberID(ctx context.Context, memberID string) ([]*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// ReplaceInstallments swaps the loan's installment set atomically.
	ReplaceInstallments(ctx context.Context, l *Loan, installments []Installment) error
	DeleteByLoanID(ctx context.Context, loanID string) error
	ReplaceAll(ctx context.Context, loans []*Loan) error
}
