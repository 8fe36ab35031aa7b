package uow

import (
	"context"

	"fundcircle-backend/internal/domain/deposit"
	"fundcircle-backend/internal/domain/loan"
	"fundcircle-backend/internal/domain/loanrequest"
	"fundcircle-backend/internal/domain/user"
)

// Repos bundles all entity repositories bound to one transaction.
type Repos struct {
	Users    user.Repository
	Deposits deposit.Repository
	Loans    loan.Repository
	Requests loanrequest.Repository
}

// UnitOfWork scopes a sequence of repository calls to a single transaction;
// everything inside fn commits together or not at all.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
