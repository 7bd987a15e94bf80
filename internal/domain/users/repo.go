package users

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByLogin resolves a username or an email to the account.
	GetByLogin(ctx context.Context, usernameOrEmail string) (*User, error)
	ExistsByLogin(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, username string, fields UpdateFields) error
	SetStatus(ctx context.Context, username string, status bool) error
	SetPassword(ctx context.Context, username, passwordHash string) error
	Delete(ctx context.Context, username string) error
}
