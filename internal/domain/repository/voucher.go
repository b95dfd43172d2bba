package repository

import (
	"context"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// VoucherRepository manages the voucher catalogue.
type VoucherRepository interface {
	Create(ctx context.Context, v model.Voucher) (*model.Voucher, error)
	Update(ctx context.Context, v model.Voucher) (*model.Voucher, error)
	GetByID(ctx context.Context, id int64) (*model.Voucher, error)
	List(ctx context.Context, activeOnly bool) ([]model.Voucher, error)
}
