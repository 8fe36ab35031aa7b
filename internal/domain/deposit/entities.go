package deposit

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("deposit not found")
	ErrInvalidAmount = errors.New("deposit amount must be positive")
)

// Deposit records money a member paid into the circle fund. MemberName is a
// point-in-time snapshot of the member's name at entry time; it is not kept in
// sync with later renames. EntryDate is assigned by the server at creation
// and never changes, PaymentDate is the user-supplied payment day.
type Deposit struct {
	ID           uint64          `gorm:"primaryKey;column:id" json:"-"`
	DepositID    string          `gorm:"size:32;uniqueIndex:ux_deposits_deposit_id" json:"deposit_id"`
	MemberID     string          `gorm:"size:32;index:idx_deposits_member" json:"member_id"`
	MemberName   string          `gorm:"size:255" json:"member_name"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	PaymentDate  time.Time       `gorm:"not null" json:"payment_date"`
	EntryDate    time.Time       `gorm:"not null" json:"entry_date"`
	ReceiptImage string          `gorm:"type:text" json:"receipt_image,omitempty"`
	Notes        string          `gorm:"type:text" json:"notes,omitempty"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deposit) TableName() string { return "deposits" }
