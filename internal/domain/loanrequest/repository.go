package loanrequest

import "context"

type Repository interface {
	Create(ctx context.Context, r *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	// GetByRequestIDForUpdate locks the request row so only one of N
	// concurrent approvers can pass the PENDING guard.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LoanRequest, error)
	ListAll(ctx context.Context) ([]*LoanRequest, error)
	ListByMemberID(ctx context.Context, memberID string) ([]*LoanRequest, error)
	Save(ctx context.Context, r *LoanRequest) error
	ReplaceAll(ctx context.Context, requests []*LoanRequest) error
}
