package deposit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "fundcircle-backend/internal/domain/deposit"
	"fundcircle-backend/internal/domain/uow"
	"fundcircle-backend/internal/domain/user"
	"fundcircle-backend/pkg/id"
)

type Usecase struct {
	deposits domain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(deposits domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{deposits: deposits, uow: tx}
}

type AddInput struct {
	MemberID     string
	Amount       decimal.Decimal
	PaymentDate  time.Time
	ReceiptImage string
	Notes        string
	Description  string
}

// Add logs a deposit on behalf of a member. The entry date is assigned here
// and never changes; the member's name is snapshotted as-is.
func (u *Usecase) Add(ctx context.Context, in AddInput) (*domain.Deposit, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	var dep *domain.Deposit
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		member, err := r.Users.GetByUserID(ctx, in.MemberID)
		if err != nil {
			return user.ErrNotFound
		}
		dep = &domain.Deposit{
			DepositID:    id.NewID32(),
			MemberID:     member.UserID,
			MemberName:   member.Name,
			Amount:       in.Amount,
			PaymentDate:  in.PaymentDate,
			EntryDate:    time.Now().UTC(),
			ReceiptImage: in.ReceiptImage,
			Notes:        in.Notes,
			Description:  in.Description,
		}
		return r.Deposits.Create(ctx, dep)
	})
	if err != nil {
		return nil, err
	}
	return dep, nil
}

type UpdateInput struct {
	Amount       decimal.Decimal
	PaymentDate  time.Time
	ReceiptImage string
	Notes        string
	Description  string
}

// Update edits the user-supplied fields of a deposit. EntryDate and the
// member snapshot are immutable.
func (u *Usecase) Update(ctx context.Context, depositID string, in UpdateInput) (*domain.Deposit, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	dep, err := u.deposits.GetByDepositID(ctx, depositID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	dep.Amount = in.Amount
	dep.PaymentDate = in.PaymentDate
	dep.ReceiptImage = in.ReceiptImage
	dep.Notes = in.Notes
	dep.Description = in.Description
	if err := u.deposits.Save(ctx, dep); err != nil {
		return nil, err
	}
	return dep, nil
}

func (u *Usecase) Delete(ctx context.Context, depositID string) error {
	if _, err := u.deposits.GetByDepositID(ctx, depositID); err != nil {
		return domain.ErrNotFound
	}
	return u.deposits.DeleteByDepositID(ctx, depositID)
}

func (u *Usecase) List(ctx context.Context) ([]*domain.Deposit, error) {
	return u.deposits.ListAll(ctx)
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string) ([]*domain.Deposit, error) {
	return u.deposits.ListByMemberID(ctx, memberID)
}
