package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
)

// --- LedgerRepository implementation ---

// Redeem exchanges points for one unit of a voucher. Locks are taken voucher
// first, then user; every multi-row operation must keep that order.
func (r *ledgerRepository) Redeem(ctx context.Context, userID, voucherID int64) (*model.Redemption, error) {
	var redemption *model.Redemption
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const voucherQuery = `SELECT points_required, quantity FROM vouchers WHERE id=$1 FOR UPDATE`
		var pointsRequired, quantity int64
		if err := tx.QueryRow(ctx, voucherQuery, voucherID).Scan(&pointsRequired, &quantity); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("voucher %d: %w", voucherID, domainErrors.ErrNotFound)
			}
			return err
		}
		if quantity <= 0 {
			return domainErrors.ErrOutOfStock
		}

		balance, err := lockUserBalanceTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		if balance < pointsRequired {
			return &domainErrors.InsufficientBalanceError{Required: pointsRequired, Available: balance}
		}

		if err := adjustBalanceTx(ctx, tx, userID, -pointsRequired); err != nil {
			return err
		}

		const stockQuery = `UPDATE vouchers SET quantity = quantity - 1 WHERE id=$1`
		if _, err := tx.Exec(ctx, stockQuery, voucherID); err != nil {
			return err
		}

		if err := insertLogTx(ctx, tx, model.PointsLogEntry{
			UserID:      userID,
			PointsDelta: -pointsRequired,
			LogType:     model.LogTypeRedeemVoucher,
			Reason:      fmt.Sprintf("Redeemed voucher #%d", voucherID),
			SourceID:    voucherID,
		}); err != nil {
			return err
		}

		const recordQuery = `INSERT INTO voucher_redemptions (user_id, voucher_id, status)
                             VALUES ($1, $2, $3)
                             RETURNING id, request_date`
		rec := model.Redemption{UserID: userID, VoucherID: voucherID, Status: model.RedemptionStatusPending}
		if err := tx.QueryRow(ctx, recordQuery, userID, voucherID, string(rec.Status)).Scan(&rec.ID, &rec.RequestDate); err != nil {
			return err
		}
		redemption = &rec
		return nil
	})
	if err != nil {
		return nil, domainErrors.Store("redeem", err)
	}

	r.storage.logger.Info("voucher redeemed",
		slog.Int64("redemption_id", redemption.ID),
		slog.Int64("user_id", userID),
		slog.Int64("voucher_id", voucherID),
	)
	return redemption, nil
}

// Fulfill moves a pending redemption to completed with the issued coupon code.
func (r *ledgerRepository) Fulfill(ctx context.Context, redemptionID int64, couponCode string) error {
	const query = `UPDATE voucher_redemptions SET status=$1, coupon_code=$2 WHERE id=$3 AND status=$4`
	tag, err := r.storage.pool.Exec(ctx, query,
		string(model.RedemptionStatusCompleted), couponCode, redemptionID, string(model.RedemptionStatusPending))
	if err != nil {
		return domainErrors.Store("fulfill", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status model.RedemptionStatus
	err = r.storage.pool.QueryRow(ctx, `SELECT status FROM voucher_redemptions WHERE id=$1`, redemptionID).Scan(&status)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domainErrors.ErrNotFound
	case err != nil:
		return domainErrors.Store("fulfill", err)
	default:
		return domainErrors.ErrRedemptionCompleted
	}
}

// Discard deletes a redemption record. Points and stock are not restored.
func (r *ledgerRepository) Discard(ctx context.Context, redemptionID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM voucher_redemptions WHERE id=$1`, redemptionID)
	if err != nil {
		return domainErrors.Store("discard", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func insertLogTx(ctx context.Context, tx pgx.Tx, entry model.PointsLogEntry) error {
	const query = `INSERT INTO points_log (user_id, points_delta, log_type, reason, source_id) VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, entry.UserID, entry.PointsDelta, string(entry.LogType), entry.Reason, entry.SourceID)
	return err
}
