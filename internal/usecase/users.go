package usecase

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// UserUseCase registers programme participants.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

func (u *UserUseCase) Create(ctx context.Context, name string) (*model.User, error) {
	name, err := NormalizeUserName(name)
	if err != nil {
		return nil, err
	}
	return u.users.Create(ctx, name)
}

func (u *UserUseCase) Get(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
