package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// pgxPool is the subset of *pgxpool.Pool used by the storage.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

const rollbackTimeout = 2 * time.Second

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type balanceRepository struct {
	storage *Storage
}

type voucherRepository struct {
	storage *Storage
}

type ledgerRepository struct {
	storage *Storage
}

type redemptionRepository struct {
	storage *Storage
}

type pointsLogRepository struct {
	storage *Storage
}

type grantRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

func (s *Storage) Vouchers() repository.VoucherRepository {
	return &voucherRepository{storage: s}
}

func (s *Storage) Ledger() repository.LedgerRepository {
	return &ledgerRepository{storage: s}
}

func (s *Storage) Redemptions() repository.RedemptionRepository {
	return &redemptionRepository{storage: s}
}

func (s *Storage) PointsLog() repository.PointsLogRepository {
	return &pointsLogRepository{storage: s}
}

func (s *Storage) Grants() repository.GrantRepository {
	return &grantRepository{storage: s}
}

var _ repository.Factory = (*Storage)(nil)

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            points_balance BIGINT NOT NULL DEFAULT 0 CHECK (points_balance >= 0),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS vouchers (
            id BIGSERIAL PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            points_required BIGINT NOT NULL CHECK (points_required > 0),
            quantity BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
            status TEXT NOT NULL DEFAULT 'active',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS voucher_redemptions (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            voucher_id BIGINT NOT NULL REFERENCES vouchers(id),
            request_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            status TEXT NOT NULL,
            coupon_code TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS points_log (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            points_delta BIGINT NOT NULL,
            log_type TEXT NOT NULL,
            reason TEXT NOT NULL,
            source_id BIGINT NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS point_grants (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL,
            points BIGINT NOT NULL CHECK (points > 0),
            log_type TEXT NOT NULL,
            reason TEXT NOT NULL,
            source_id BIGINT NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            credited_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_redemptions_user ON voucher_redemptions(user_id, request_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_points_log_user ON points_log(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_point_grants_status ON point_grants(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			// rollback must still reach the server when ctx already expired
			rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
			defer cancel()
			if rbErr := tx.Rollback(rbCtx); rbErr != nil && s.logger != nil {
				s.logger.Warn("rollback failed", slog.String("error", rbErr.Error()))
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
