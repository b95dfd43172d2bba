package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/polkiloo/ecopoints/internal/domain/model"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

func normalizeLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}

// --- RedemptionRepository implementation ---

func (r *redemptionRepository) List(ctx context.Context, filter model.RedemptionFilter) ([]model.Redemption, error) {
	builder := sq.Select("id", "user_id", "voucher_id", "request_date", "status", "coupon_code").
		From("voucher_redemptions").
		OrderBy("request_date DESC", "id DESC").
		Limit(normalizeLimit(filter.Limit)).
		PlaceholderFormat(sq.Dollar)
	if filter.UserID > 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": string(filter.Status)})
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

	var result []model.Redemption
	for rows.Next() {
		var rec model.Redemption
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.VoucherID, &rec.RequestDate, &rec.Status, &rec.CouponCode); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- PointsLogRepository implementation ---

func (r *pointsLogRepository) List(ctx context.Context, filter model.PointsLogFilter) ([]model.PointsLogEntry, error) {
	builder := sq.Select("id", "user_id", "points_delta", "log_type", "reason", "source_id", "created_at").
		From("points_log").
		OrderBy("created_at DESC", "id DESC").
		Limit(normalizeLimit(filter.Limit)).
		PlaceholderFormat(sq.Dollar)
	if filter.UserID > 0 {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.LogType != "" {
		builder = builder.Where(sq.Eq{"log_type": string(filter.LogType)})
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

	var result []model.PointsLogEntry
	for rows.Next() {
		var e model.PointsLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.PointsDelta, &e.LogType, &e.Reason, &e.SourceID, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
