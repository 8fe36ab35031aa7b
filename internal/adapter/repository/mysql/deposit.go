package mysql

import (
	"context"

	"gorm.io/gorm"

	depositDomain "fundcircle-backend/internal/domain/deposit"
)

type DepositRepository struct{ db *gorm.DB }

func NewDepositRepository(db *gorm.DB) *DepositRepository { return &DepositRepository{db: db} }

func (r *DepositRepository) Create(ctx context.Context, d *depositDomain.Deposit) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DepositRepository) Save(ctx context.Context, d *depositDomain.Deposit) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DepositRepository) GetByDepositID(ctx context.Context, depositID string) (*depositDomain.Deposit, error) {
	var out depositDomain.Deposit
	res := r.db.WithContext(ctx).Where("deposit_id = ?", depositID).First(&out)
	return &out, res.Error
}

func (r *DepositRepository) ListAll(ctx context.Context) ([]*depositDomain.Deposit, error) {
	var out []*depositDomain.Deposit
	res := r.db.WithContext(ctx).Order("entry_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *DepositRepository) ListByMemberID(ctx context.Context, memberID string) ([]*depositDomain.Deposit, error) {
	var out []*depositDomain.Deposit
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("entry_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DepositRepository) DeleteByDepositID(ctx context.Context, depositID string) error {
	return r.db.WithContext(ctx).Where("deposit_id = ?", depositID).Delete(&depositDomain.Deposit{}).Error
}

func (r *DepositRepository) ReplaceAll(ctx context.Context, deposits []*depositDomain.Deposit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&depositDomain.Deposit{}).Error; err != nil {
			return err
		}
		if len(deposits) == 0 {
			return nil
		}
		return tx.Create(deposits).Error
	})
}
