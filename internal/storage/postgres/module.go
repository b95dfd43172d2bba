package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ecopoints/internal/config"
	"github.com/polkiloo/ecopoints/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.BalanceRepository { return s.Balances() },
		func(s *Storage) repository.VoucherRepository { return s.Vouchers() },
		func(s *Storage) repository.LedgerRepository { return s.Ledger() },
		func(s *Storage) repository.RedemptionRepository { return s.Redemptions() },
		func(s *Storage) repository.PointsLogRepository { return s.PointsLog() },
		func(s *Storage) repository.GrantRepository { return s.Grants() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
