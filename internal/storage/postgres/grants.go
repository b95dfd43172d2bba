package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// --- GrantRepository implementation ---

func (r *grantRepository) Enqueue(ctx context.Context, g model.Grant) (*model.Grant, error) {
	const query = `INSERT INTO point_grants (user_id, points, log_type, reason, source_id, status)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   RETURNING id, created_at`
	g.Status = model.GrantStatusPending
	err := r.storage.pool.QueryRow(ctx, query, g.UserID, g.Points, string(g.LogType), g.Reason, g.SourceID, string(g.Status)).
		Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *grantRepository) SelectBatchForCrediting(ctx context.Context, limit int) ([]model.Grant, error) {
	const selectQuery = `SELECT id, user_id, points, log_type, reason, source_id, status, created_at
                         FROM point_grants
                         WHERE status IN ('PENDING', 'PROCESSING')
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var grants []model.Grant
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}

		var batch []model.Grant
		for rows.Next() {
			var g model.Grant
			if err := rows.Scan(&g.ID, &g.UserID, &g.Points, &g.LogType, &g.Reason, &g.SourceID, &g.Status, &g.CreatedAt); err != nil {
				rows.Close()
				return err
			}
			batch = append(batch, g)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range batch {
			if _, err := tx.Exec(ctx, `UPDATE point_grants SET status='PROCESSING' WHERE id=$1`, batch[i].ID); err != nil {
				return err
			}
			batch[i].Status = model.GrantStatusProcessing
		}
		grants = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return grants, nil
}

// Credit locks the grant, then the user, and applies the grant exactly once.
func (r *grantRepository) Credit(ctx context.Context, grantID int64) (*model.Grant, error) {
	g := model.Grant{ID: grantID}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const grantQuery = `SELECT user_id, points, log_type, reason, source_id, status, created_at
                            FROM point_grants WHERE id=$1 FOR UPDATE`
		err := tx.QueryRow(ctx, grantQuery, grantID).
			Scan(&g.UserID, &g.Points, &g.LogType, &g.Reason, &g.SourceID, &g.Status, &g.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("grant %d: %w", grantID, domainErrors.ErrNotFound)
			}
			return err
		}
		if g.Status == model.GrantStatusCredited || g.Status == model.GrantStatusRejected {
			return nil
		}

		if _, err := lockUserBalanceTx(ctx, tx, g.UserID); err != nil {
			return err
		}
		if err := adjustBalanceTx(ctx, tx, g.UserID, g.Points); err != nil {
			return err
		}
		if err := insertLogTx(ctx, tx, model.PointsLogEntry{
			UserID:      g.UserID,
			PointsDelta: g.Points,
			LogType:     g.LogType,
			Reason:      g.Reason,
			SourceID:    g.SourceID,
		}); err != nil {
			return err
		}

		const markQuery = `UPDATE point_grants SET status=$1, credited_at=NOW() WHERE id=$2 RETURNING credited_at`
		g.Status = model.GrantStatusCredited
		return tx.QueryRow(ctx, markQuery, string(g.Status), grantID).Scan(&g.CreditedAt)
	})
	if err != nil {
		return nil, domainErrors.Store("credit grant", err)
	}
	return &g, nil
}

// Reject marks a grant that can never be credited.
func (r *grantRepository) Reject(ctx context.Context, grantID int64) error {
	const query = `UPDATE point_grants SET status=$1 WHERE id=$2 AND status <> $3`
	tag, err := r.storage.pool.Exec(ctx, query, string(model.GrantStatusRejected), grantID, string(model.GrantStatusCredited))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
