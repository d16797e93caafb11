package memory

import (
	"context"

	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/core/ports"
)

var _ ports.UserRepository = &UserRepository{}

type UserRepository struct {
	users *store[string, *user.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newStore[string, *user.User]("user")}
}

func (r *UserRepository) Add(_ context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return r.users.add(u.Username(), u)
}

func (r *UserRepository) Get(_ context.Context, username string) (*user.User, error) {
	return r.users.get(username)
}

func (r *UserRepository) Update(_ context.Context, username string, fn func(u *user.User) error) error {
	return r.users.update(username, fn)
}

func (r *UserRepository) Remove(_ context.Context, username string) error {
	return r.users.remove(username)
}

func (r *UserRepository) List(_ context.Context) ([]*user.User, error) {
	return r.users.list(), nil
}

func (r *UserRepository) Replace(_ context.Context, users []*user.User) error {
	return r.users.replace((*user.User).Username, users)
}
