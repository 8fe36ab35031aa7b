package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	requestDomain "fundcircle-backend/internal/domain/loanrequest"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) Create(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *LoanRequestRepository) Save(ctx context.Context, lr *requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Save(lr).Error
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.LoanRequest, error) {
	var out requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRequestRepository) ListAll(ctx context.Context) ([]*requestDomain.LoanRequest, error) {
	var out []*requestDomain.LoanRequest
	res := r.db.WithContext(ctx).Order("request_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) ListByMemberID(ctx context.Context, memberID string) ([]*requestDomain.LoanRequest, error) {
	var out []*requestDomain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("request_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRequestRepository) ReplaceAll(ctx context.Context, requests []*requestDomain.LoanRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&requestDomain.LoanRequest{}).Error; err != nil {
			return err
		}
		if len(requests) == 0 {
			return nil
		}
		return tx.Create(requests).Error
	})
}
