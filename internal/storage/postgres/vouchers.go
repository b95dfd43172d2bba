package postgres

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
)

var voucherColumns = []string{"id", "title", "description", "points_required", "quantity", "status", "created_at"}

func scanVoucher(row pgx.Row, v *model.Voucher) error {
	return row.Scan(&v.ID, &v.Title, &v.Description, &v.PointsRequired, &v.Quantity, &v.Status, &v.CreatedAt)
}

// --- VoucherRepository implementation ---

func (r *voucherRepository) Create(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	const query = `INSERT INTO vouchers (title, description, points_required, quantity, status)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, v.Title, v.Description, v.PointsRequired, v.Quantity, string(v.Status)).
		Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Update rewrites voucher fields under the same row lock Redeem takes.
func (r *voucherRepository) Update(ctx context.Context, v model.Voucher) (*model.Voucher, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, `SELECT id FROM vouchers WHERE id=$1 FOR UPDATE`, v.ID).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const updateQuery = `UPDATE vouchers
                             SET title=$1, description=$2, points_required=$3, quantity=$4, status=$5
                             WHERE id=$6
                             RETURNING created_at`
		return tx.QueryRow(ctx, updateQuery, v.Title, v.Description, v.PointsRequired, v.Quantity, string(v.Status), v.ID).
			Scan(&v.CreatedAt)
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *voucherRepository) GetByID(ctx context.Context, id int64) (*model.Voucher, error) {
	const query = `SELECT id, title, description, points_required, quantity, status, created_at FROM vouchers WHERE id=$1`
	var v model.Voucher
	if err := scanVoucher(r.storage.pool.QueryRow(ctx, query, id), &v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *voucherRepository) List(ctx context.Context, activeOnly bool) ([]model.Voucher, error) {
	builder := sq.Select(voucherColumns...).
		From("vouchers").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)
	if activeOnly {
		builder = builder.Where(sq.Eq{"status": string(model.VoucherStatusActive)}).
			Where(sq.Gt{"quantity": 0})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Voucher
	for rows.Next() {
		var v model.Voucher
		if err := scanVoucher(rows, &v); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
