package repository

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, name string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
