package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Balances() BalanceRepository
	Vouchers() VoucherRepository
	Ledger() LedgerRepository
	Redemptions() RedemptionRepository
	PointsLog() PointsLogRepository
	Grants() GrantRepository
}
