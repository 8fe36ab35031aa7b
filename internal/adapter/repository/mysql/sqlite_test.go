package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no DECIMAL, no ENUM) ---

type userSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	UserID      string    `gorm:"size:32;column:user_id"`
	Name        string    `gorm:"column:name"`
	Email       string    `gorm:"column:email"`
	Role        string    `gorm:"type:text;column:role"`
	Status      string    `gorm:"type:text;column:status"`
	Balance     float64   `gorm:"column:balance"`
	Avatar      string    `gorm:"column:avatar"`
	Designation string    `gorm:"column:designation"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

type depositSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	DepositID    string    `gorm:"size:32;column:deposit_id"`
	MemberID     string    `gorm:"size:32;column:member_id"`
	MemberName   string    `gorm:"column:member_name"`
	Amount       float64   `gorm:"column:amount"`
	PaymentDate  time.Time `gorm:"column:payment_date"`
	EntryDate    time.Time `gorm:"column:entry_date"`
	ReceiptImage string    `gorm:"column:receipt_image"`
	Notes        string    `gorm:"column:notes"`
	Description  string    `gorm:"column:description"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (depositSQLite) TableName() string { return "deposits" }

type loanSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	LoanID            string    `gorm:"size:32;column:loan_id"`
	MemberID          string    `gorm:"size:32;column:member_id"`
	MemberName        string    `gorm:"column:member_name"`
	TotalAmount       float64   `gorm:"column:total_amount"`
	RecoverableAmount float64   `gorm:"column:recoverable_amount"`
	WaiverAmount      float64   `gorm:"column:waiver_amount"`
	Term              int       `gorm:"column:term"`
	IssuedDate        time.Time `gorm:"column:issued_date"`
	Status            string    `gorm:"type:text;column:status"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type installmentSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	InstallmentID string     `gorm:"size:36;column:installment_id"`
	LoanRef       uint64     `gorm:"column:loan_ref"`
	Sequence      int        `gorm:"column:sequence"`
	Amount        float64    `gorm:"column:amount"`
	DueDate       time.Time  `gorm:"column:due_date"`
	PaidDate      *time.Time `gorm:"column:paid_date"`
	Status        string     `gorm:"type:text;column:status"`
}

func (installmentSQLite) TableName() string { return "installments" }

type loanRequestSQLite struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	RequestID   string    `gorm:"size:32;column:request_id"`
	MemberID    string    `gorm:"size:32;column:member_id"`
	MemberName  string    `gorm:"column:member_name"`
	Amount      float64   `gorm:"column:amount"`
	Term        int       `gorm:"column:term"`
	RequestDate time.Time `gorm:"column:request_date"`
	Status      string    `gorm:"type:text;column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (loanRequestSQLite) TableName() string { return "loan_requests" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &depositSQLite{}, &loanSQLite{}, &installmentSQLite{}, &loanRequestSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
