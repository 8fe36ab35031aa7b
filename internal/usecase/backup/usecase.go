package backup

import (
	"context"

	"fundcircle-backend/internal/domain/deposit"
	"fundcircle-backend/internal/domain/loan"
	"fundcircle-backend/internal/domain/loanrequest"
	"fundcircle-backend/internal/domain/uow"
	"fundcircle-backend/internal/domain/user"
)

// Snapshot is the full persisted state of the circle. It round-trips through
// JSON losslessly: Export followed by Import restores the same entity set.
type Snapshot struct {
	Users        []*user.User               `json:"users"`
	Deposits     []*deposit.Deposit         `json:"deposits"`
	Loans        []*loan.Loan               `json:"loans"`
	LoanRequests []*loanrequest.LoanRequest `json:"loanRequests"`
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Export reads all collections in one transaction so the snapshot is
// internally consistent.
func (u *Usecase) Export(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if snap.Users, err = r.Users.ListAll(ctx); err != nil {
			return err
		}
		if snap.Deposits, err = r.Deposits.ListAll(ctx); err != nil {
			return err
		}
		if snap.Loans, err = r.Loans.ListAll(ctx); err != nil {
			return err
		}
		snap.LoanRequests, err = r.Requests.ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// Import replaces every collection with the snapshot's contents atomically; a
// failure midway rolls the whole restore back.
func (u *Usecase) Import(ctx context.Context, snap *Snapshot) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.ReplaceAll(ctx, snap.Loans); err != nil {
			return err
		}
		if err := r.Deposits.ReplaceAll(ctx, snap.Deposits); err != nil {
			return err
		}
		if err := r.Requests.ReplaceAll(ctx, snap.LoanRequests); err != nil {
			return err
		}
		return r.Users.ReplaceAll(ctx, snap.Users)
	})
}
