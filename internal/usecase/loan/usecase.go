package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "fundcircle-backend/internal/domain/loan"
	"fundcircle-backend/internal/domain/uow"
	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/pkg/id"
)

type Usecase struct {
	loans domain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, uow: tx}
}

type IssueInput struct {
	MemberID string
	Amount   decimal.Decimal
	Term     int
}

// Issue creates a loan directly (admin path), computing the 70/30 split and
// materializing the installment schedule dated from now.
func (u *Usecase) Issue(ctx context.Context, in IssueInput) (*domain.Loan, error) {
	var issued *domain.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		member, err := r.Users.GetByUserID(ctx, in.MemberID)
		if err != nil {
			return user.ErrNotFound
		}
		l, err := domain.New(id.NewID32(), member.UserID, member.Name, in.Amount, in.Term, time.Now().UTC())
		if err != nil {
			return err
		}
		if err := r.Loans.Create(ctx, l); err != nil {
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

type ReissueInput struct {
	Amount decimal.Decimal
	Term   int
}

// Reissue replaces a loan's terms: the split is recomputed and a fresh
// all-PENDING installment set is generated, anchored at the original issue
// date. Any recorded payments on the old schedule are discarded with it.
func (u *Usecase) Reissue(ctx context.Context, loanID string, in ReissueInput) (*domain.Loan, error) {
	var out *domain.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return domain.ErrNotFound
		}
		split, err := domain.ComputeSplit(in.Amount, in.Term)
		if err != nil {
			return err
		}
		installments, err := domain.BuildSchedule(in.Amount, in.Term, l.IssuedDate)
		if err != nil {
			return err
		}
		l.TotalAmount = in.Amount
		l.RecoverableAmount = split.Recoverable
		l.WaiverAmount = split.Waiver
		l.Term = in.Term
		l.Status = domain.StatusActive
		if err := r.Loans.ReplaceInstallments(ctx, l, installments); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PayInstallment records one repayment. The loan row is locked so two
// near-simultaneous payments serialize; a repeated payment on the same
// installment is rejected, not silently absorbed. Loan status is re-derived
// in the same update.
func (u *Usecase) PayInstallment(ctx context.Context, loanID string, installmentID uuid.UUID) (*domain.Loan, error) {
	var out *domain.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := l.Pay(installmentID, time.Now().UTC()); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, loanID string) error {
	if _, err := u.loans.GetByLoanID(ctx, loanID); err != nil {
		return domain.ErrNotFound
	}
	return u.loans.DeleteByLoanID(ctx, loanID)
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (u *Usecase) List(ctx context.Context) ([]*domain.Loan, error) {
	return u.loans.ListAll(ctx)
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]*domain.Loan, error) {
	return u.loans.ListByMemberID(ctx, memberID)
}
