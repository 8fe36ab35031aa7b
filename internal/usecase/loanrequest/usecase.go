package loanrequest

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainLoan "fundcircle-backend/internal/domain/loan"
	domainRequest "fundcircle-backend/internal/domain/loanrequest"
	"fundcircle-backend/internal/domain/uow"
	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/pkg/id"
)

type Usecase struct {
	requests domainRequest.Repository
	uow      uow.UnitOfWork
}

// NewUsecase: the read paths use the plain repo, the transitions go through a UoW.
func NewUsecase(requests domainRequest.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{requests: requests, uow: tx}
}

type SubmitInput struct {
	MemberID string
	Amount   decimal.Decimal
	Term     int
}

// Submit files a new loan request for an approved member, snapshotting the
// member's name at request time.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*domainRequest.LoanRequest, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainRequest.ErrInvalidAmount
	}
	if in.Term <= 0 {
		return nil, domainRequest.ErrInvalidTerm
	}

	var req *domainRequest.LoanRequest
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		member, err := r.Users.GetByUserID(ctx, in.MemberID)
		if err != nil {
			return user.ErrNotFound
		}
		if member.Status != user.StatusApproved {
			return user.ErrInvalidStatus
		}
		req = &domainRequest.LoanRequest{
			RequestID:   id.NewID32(),
			MemberID:    member.UserID,
			MemberName:  member.Name,
			Amount:      in.Amount,
			Term:        in.Term,
			RequestDate: time.Now().UTC(),
			Status:      domainRequest.StatusPending,
		}
		return r.Requests.Create(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Approve moves a PENDING request to APPROVED and materializes the loan, all
// in one transaction. The loan is persisted before the status flips, so a
// failed loan write rolls back and leaves the request retryable. A request
// already in a terminal state is rejected, never re-processed.
func (u *Usecase) Approve(ctx context.Context, requestID string) (*domainLoan.Loan, error) {
	var issued *domainLoan.Loan

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return domainRequest.ErrNotFound
		}
		if req.Finalized() {
			return domainRequest.ErrAlreadyFinalized
		}

		l, err := domainLoan.New(id.NewID32(), req.MemberID, req.MemberName, req.Amount, req.Term, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		req.Status = domainRequest.StatusApproved
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		issued = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return issued, nil
}

// Reject moves a PENDING request to REJECTED. No loan is created.
func (u *Usecase) Reject(ctx context.Context, requestID string) (*domainRequest.LoanRequest, error) {
	var out *domainRequest.LoanRequest

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return domainRequest.ErrNotFound
		}
		if req.Finalized() {
			return domainRequest.ErrAlreadyFinalized
		}
		req.Status = domainRequest.StatusRejected
		if err := r.Requests.Save(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) List(ctx context.Context) ([]*domainRequest.LoanRequest, error) {
	return u.requests.ListAll(ctx)
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]*domainRequest.LoanRequest, error) {
	return u.requests.ListByMemberID(ctx, memberID)
}
