package user

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "fundcircle-backend/internal/domain/user"
	"fundcircle-backend/pkg/id"
)

type Usecase struct{ users domain.Repository }

func NewUsecase(users domain.Repository) *Usecase { return &Usecase{users: users} }

type SignupInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// Signup registers a user. Admin signups start APPROVED, member signups start
// PENDING and wait for an admin verdict. Email is the uniqueness key.
func (u *Usecase) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	_, err := u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	status := domain.StatusPending
	if in.Role == domain.RoleAdmin {
		status = domain.StatusApproved
	}
	nu := &domain.User{
		UserID:  id.NewID32(),
		Name:    in.Name,
		Email:   in.Email,
		Role:    in.Role,
		Status:  status,
		Balance: decimal.Zero,
	}
	if err := u.users.Create(ctx, nu); err != nil {
		return nil, err
	}
	return nu, nil
}

// Review moves a PENDING signup to APPROVED or REJECTED. Terminal states are
// final; a second verdict is refused.
func (u *Usecase) Review(ctx context.Context, userID string, verdict domain.Status) (*domain.User, error) {
	if verdict != domain.StatusApproved && verdict != domain.StatusRejected {
		return nil, domain.ErrInvalidStatus
	}
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if usr.Reviewed() {
		return nil, domain.ErrAlreadyReviewed
	}
	usr.Status = verdict
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

type ProfileInput struct {
	Name        string
	Avatar      string
	Designation string
}

// UpdateProfile mutates self-service profile fields. Role, status, email and
// balance are not reachable from here.
func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		usr.Name = in.Name
	}
	if in.Avatar != "" {
		usr.Avatar = in.Avatar
	}
	if in.Designation != "" {
		usr.Designation = in.Designation
	}
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return usr, nil
}

func (u *Usecase) List(ctx context.Context) ([]*domain.User, error) {
	return u.users.ListAll(ctx)
}
