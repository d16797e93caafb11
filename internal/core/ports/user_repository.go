package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/user"
)

// UserRepository is the identity lookup: username -> User. Credential checks
// happen before the core is called.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error
	Get(ctx context.Context, username string) (*user.User, error)
	Update(ctx context.Context, username string, fn func(u *user.User) error) error
	Remove(ctx context.Context, username string) error
	List(ctx context.Context) ([]*user.User, error)
	Replace(ctx context.Context, users []*user.User) error
}
