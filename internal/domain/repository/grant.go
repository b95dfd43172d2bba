package repository

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// GrantRepository queues and credits balance increases.
type GrantRepository interface {
	Enqueue(ctx context.Context, g model.Grant) (*model.Grant, error)
	SelectBatchForCrediting(ctx context.Context, limit int) ([]model.Grant, error)
	// Credit applies a grant to the user balance. Already credited grants are a no-op.
	Credit(ctx context.Context, grantID int64) (*model.Grant, error)
	Reject(ctx context.Context, grantID int64) error
}
