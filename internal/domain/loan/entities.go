package loan

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "PENDING"
	InstallmentPaid    InstallmentStatus = "PAID"
)

var (
	ErrNotFound               = errors.New("loan not found")
	ErrInvalidAmount          = errors.New("loan amount must be positive")
	ErrInvalidTerm            = errors.New("loan term must be a positive number of months")
	ErrInstallmentNotFound    = errors.New("installment not found")
	ErrInstallmentAlreadyPaid = errors.New("installment already paid")
)

// Loan is an issued emergency loan. Only the recoverable portion (70% of the
// total) is repaid through installments; the waiver portion is forgiven at
// issuance. MemberName is a snapshot taken when the loan was issued.
type Loan struct {
	ID                uint64          `gorm:"primaryKey;column:id" json:"-"`
	LoanID            string          `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	MemberID          string          `gorm:"size:32;index:idx_loans_member" json:"member_id"`
	MemberName        string          `gorm:"size:255" json:"member_name"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"total_amount"`
	RecoverableAmount decimal.Decimal `gorm:"type:decimal(18,2)" json:"recoverable_amount"`
	WaiverAmount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"waiver_amount"`
	Term              int             `gorm:"not null" json:"term"`
	IssuedDate        time.Time       `gorm:"not null" json:"issued_date"`
	Status            Status          `gorm:"size:16;not null;default:'ACTIVE'" json:"status"`
	Installments      []Installment   `gorm:"foreignKey:LoanRef;references:ID;constraint:OnDelete:CASCADE" json:"installments"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Installment is one scheduled repayment of the recoverable amount. Exactly
// Term installments exist per loan and they share the loan's lifecycle.
type Installment struct {
	ID            uint64            `gorm:"primaryKey;column:id" json:"-"`
	InstallmentID uuid.UUID         `gorm:"type:char(36);uniqueIndex:ux_installments_iid" json:"id"`
	LoanRef       uint64            `gorm:"column:loan_ref;index:idx_installments_loan" json:"-"`
	Sequence      int               `gorm:"not null" json:"sequence"`
	Amount        decimal.Decimal   `gorm:"type:decimal(18,2)" json:"amount"`
	DueDate       time.Time         `gorm:"not null" json:"due_date"`
	PaidDate      *time.Time        `json:"paid_date,omitempty"`
	Status        InstallmentStatus `gorm:"size:16;not null;default:'PENDING'" json:"status"`
}

func (Installment) TableName() string { return "installments" }
