package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name string) (*model.User, error) {
	const query = `INSERT INTO users (name) VALUES ($1) RETURNING id, points_balance, created_at`
	u := model.User{Name: name}
	err := r.storage.pool.QueryRow(ctx, query, name).Scan(&u.ID, &u.PointsBalance, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, points_balance, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.PointsBalance, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- BalanceRepository implementation ---

func (r *balanceRepository) GetSummary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	const query = `SELECT u.points_balance,
                          COALESCE(SUM(l.points_delta) FILTER (WHERE l.points_delta > 0), 0),
                          COALESCE(-SUM(l.points_delta) FILTER (WHERE l.points_delta < 0), 0)
                   FROM users u
                   LEFT JOIN points_log l ON l.user_id = u.id
                   WHERE u.id=$1
                   GROUP BY u.id`
	summary := model.BalanceSummary{UserID: userID}
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&summary.Current, &summary.Earned, &summary.Redeemed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &summary, nil
}

// lockUserBalanceTx reads the balance under a row lock held until the transaction ends.
func lockUserBalanceTx(ctx context.Context, tx pgx.Tx, userID int64) (int64, error) {
	const query = `SELECT points_balance FROM users WHERE id=$1 FOR UPDATE`
	var balance int64
	if err := tx.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %d: %w", userID, domainErrors.ErrNotFound)
		}
		return 0, err
	}
	return balance, nil
}

// adjustBalanceTx applies a signed delta to a balance locked by lockUserBalanceTx.
func adjustBalanceTx(ctx context.Context, tx pgx.Tx, userID, delta int64) error {
	const query = `UPDATE users SET points_balance = points_balance + $1 WHERE id=$2`
	_, err := tx.Exec(ctx, query, delta, userID)
	return err
}
