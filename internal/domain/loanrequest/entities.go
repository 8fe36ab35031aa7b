package loanrequest

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrNotFound         = errors.New("loan request not found")
	ErrAlreadyFinalized = errors.New("loan request already finalized")
	ErrInvalidAmount    = errors.New("requested amount must be positive")
	ErrInvalidTerm      = errors.New("requested term must be a positive number of months")
)

// LoanRequest is a member's application for a loan, awaiting an admin verdict.
// Status moves from PENDING to exactly one terminal state and is never
// re-processed after that.
type LoanRequest struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	RequestID   string          `gorm:"size:32;uniqueIndex:ux_loan_requests_request_id" json:"request_id"`
	MemberID    string          `gorm:"size:32;index:idx_loan_requests_member" json:"member_id"`
	MemberName  string          `gorm:"size:255" json:"member_name"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Term        int             `gorm:"not null" json:"term"`
	RequestDate time.Time       `gorm:"not null" json:"request_date"`
	Status      Status          `gorm:"size:16;not null;default:'PENDING'" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// Finalized reports whether the request has reached a terminal state.
func (r *LoanRequest) Finalized() bool { return r.Status != StatusPending }
