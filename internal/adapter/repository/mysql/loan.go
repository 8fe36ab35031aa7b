package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "fundcircle-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

// Create persists the loan row and its installment set in one go; gorm writes
// the association with the loan's numeric key.
func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// Save uses full-save mode so installment status/paid-date mutations travel
// with the loan row.
func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListAll(ctx context.Context) ([]*loanDomain.Loan, error) {
	var out []*loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Order("issued_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByMemberID(ctx context.Context, memberID string) ([]*loanDomain.Loan, error) {
	var out []*loanDomain.Loan
	res := r.db.WithContext(ctx).
		Preload("Installments", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Where("member_id = ?", memberID).
		Order("issued_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

// ReplaceInstallments deletes the old schedule and inserts the new one under
// the same loan, swapping the in-memory set on success.
func (r *LoanRepository) ReplaceInstallments(ctx context.Context, l *loanDomain.Loan, installments []loanDomain.Installment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("loan_ref = ?", l.ID).Delete(&loanDomain.Installment{}).Error; err != nil {
			return err
		}
		for i := range installments {
			installments[i].ID = 0
			installments[i].LoanRef = l.ID
		}
		if len(installments) == 0 {
			return nil
		}
		return tx.Create(&installments).Error
	})
	if err != nil {
		return err
	}
	l.Installments = installments
	return nil
}

func (r *LoanRepository) DeleteByLoanID(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l loanDomain.Loan
		if err := tx.Where("loan_id = ?", loanID).First(&l).Error; err != nil {
			return err
		}
		// Installments share the loan's lifecycle.
		if err := tx.Where("loan_ref = ?", l.ID).Delete(&loanDomain.Installment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&l).Error
	})
}

func (r *LoanRepository) ReplaceAll(ctx context.Context, loans []*loanDomain.Loan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&loanDomain.Installment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&loanDomain.Loan{}).Error; err != nil {
			return err
		}
		if len(loans) == 0 {
			return nil
		}
		return tx.Create(loans).Error
	})
}
