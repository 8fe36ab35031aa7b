package user

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrAlreadyReviewed = errors.New("signup already reviewed")
	ErrInvalidStatus   = errors.New("invalid status transition")
)

type User struct {
	ID          uint64          `gorm:"primaryKey;column:id" json:"-"`
	UserID      string          `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Email       string          `gorm:"size:255;uniqueIndex:ux_users_email" json:"email"`
	Role        Role            `gorm:"size:16;not null" json:"role"`
	Status      Status          `gorm:"size:16;not null;default:'PENDING'" json:"status"`
	Balance     decimal.Decimal `gorm:"type:decimal(18,2)" json:"balance"`
	Avatar      string          `gorm:"type:text" json:"avatar,omitempty"`
	Designation string          `gorm:"size:255" json:"designation,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Reviewed reports whether the signup has reached a terminal state.
func (u *User) Reviewed() bool { return u.Status != StatusPending }
