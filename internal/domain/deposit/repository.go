package deposit

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deposit) error
	GetByDepositID(ctx context.Context, depositID string) (*Deposit, error)
	ListAll(ctx context.Context) ([]*Deposit, error)
	ListByMemberID(ctx context.Context, memberID string) ([]*Deposit, error)
	Save(ctx context.Context, d *Deposit) error
	DeleteByDepositID(ctx context.Context, depositID string) error
	ReplaceAll(ctx context.Context, deposits []*Deposit) error
}
