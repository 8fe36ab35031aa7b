package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByUserIDForUpdate locks the row for the duration of the enclosing tx.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByEmailAndRole(ctx context.Context, email string, role Role) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) error
	ReplaceAll(ctx context.Context, users []*User) error
}
