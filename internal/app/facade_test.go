package app

import (
	"context"
	"errors"
	"testing"

	"github.com/polkiloo/ecopoints/internal/config"
	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/metrics"
	testhelpers "github.com/polkiloo/ecopoints/internal/test"
	"github.com/polkiloo/ecopoints/internal/usecase"
)

type healthStub struct {
	err   error
	calls int
}

func (h *healthStub) HealthCheck(context.Context) error {
	h.calls++
	return h.err
}

type facadeDeps struct {
	users       *testhelpers.UserRepositoryStub
	vouchers    *testhelpers.VoucherRepositoryStub
	ledger      *testhelpers.LedgerRepositoryStub
	redemptions *testhelpers.RedemptionRepositoryStub
	balances    *testhelpers.BalanceRepositoryStub
	pointsLog   *testhelpers.PointsLogRepositoryStub
	grants      *testhelpers.GrantRepositoryStub
	cache       *testhelpers.CacheStub
	health      *healthStub
}

func newFacade() (*EcoFacade, *facadeDeps) {
	deps := &facadeDeps{
		users:       testhelpers.NewUserRepositoryStub(),
		vouchers:    &testhelpers.VoucherRepositoryStub{},
		ledger:      &testhelpers.LedgerRepositoryStub{},
		redemptions: &testhelpers.RedemptionRepositoryStub{},
		balances:    &testhelpers.BalanceRepositoryStub{Summary: &model.BalanceSummary{UserID: 1, Current: 60, Earned: 100, Redeemed: 40}},
		pointsLog:   &testhelpers.PointsLogRepositoryStub{},
		grants:      &testhelpers.GrantRepositoryStub{},
		cache:       testhelpers.NewCacheStub(),
		health:      &healthStub{},
	}
	logger := testhelpers.DiscardLogger()

	facade := NewEcoFacade(
		usecase.NewUserUseCase(deps.users),
		usecase.NewVoucherUseCase(deps.vouchers, deps.cache, logger),
		usecase.NewLedgerUseCase(deps.ledger, deps.redemptions, deps.cache, metrics.New(), logger, &config.Config{}),
		usecase.NewBalanceUseCase(deps.balances, deps.pointsLog, deps.cache, logger),
		usecase.NewGrantUseCase(deps.grants, deps.cache, logger),
		deps.health,
	)
	return facade, deps
}

func TestEcoFacadeUsers(t *testing.T) {
	facade, deps := newFacade()
	user, err := facade.CreateUser(context.Background(), "  alice ")
	if err != nil {
		t.Fatalf("create user returned error: %v", err)
	}
	if _, ok := deps.users.ByID[user.ID]; !ok {
		t.Fatalf("expected user %d to be stored", user.ID)
	}
}

func TestEcoFacadeVouchers(t *testing.T) {
	facade, deps := newFacade()
	created, err := facade.CreateVoucher(context.Background(), model.Voucher{Title: "Tote bag", PointsRequired: 40, Quantity: 3, Status: model.VoucherStatusActive})
	if err != nil {
		t.Fatalf("create voucher returned error: %v", err)
	}

	got, err := facade.Voucher(context.Background(), created.ID)
	if err != nil || got.Title != "Tote bag" {
		t.Fatalf("unexpected voucher lookup: %+v err=%v", got, err)
	}

	created.Quantity = 0
	if _, err := facade.UpdateVoucher(context.Background(), *created); err != nil {
		t.Fatalf("update voucher returned error: %v", err)
	}
	if deps.vouchers.Items[created.ID].Quantity != 0 {
		t.Fatal("expected stored voucher to be updated")
	}

	active, err := facade.Vouchers(context.Background(), true)
	if err != nil {
		t.Fatalf("list vouchers returned error: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected sold out voucher to be hidden, got %d", len(active))
	}
}

func TestEcoFacadeRedemptions(t *testing.T) {
	facade, deps := newFacade()
	deps.redemptions.Items = []model.Redemption{{ID: 5, UserID: 1}}

	rec, err := facade.Redeem(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("redeem returned error: %v", err)
	}
	if rec.Status != model.RedemptionStatusPending {
		t.Fatalf("expected pending redemption, got %s", rec.Status)
	}

	code := testhelpers.RandomCouponCode()
	if err := facade.Fulfill(context.Background(), 5, " "+code+" "); err != nil {
		t.Fatalf("fulfill returned error: %v", err)
	}
	if deps.ledger.Fulfilled[5] != code {
		t.Fatalf("expected trimmed coupon code %q, got %q", code, deps.ledger.Fulfilled[5])
	}

	if err := facade.DiscardRedemption(context.Background(), 5); err != nil {
		t.Fatalf("discard returned error: %v", err)
	}
	if len(deps.ledger.Discarded) != 1 || deps.ledger.Discarded[0] != 5 {
		t.Fatalf("unexpected discarded ids %v", deps.ledger.Discarded)
	}

	if _, err := facade.UserRedemptions(context.Background(), 1); err != nil {
		t.Fatalf("user redemptions returned error: %v", err)
	}
	if deps.redemptions.LastFilter.UserID != 1 {
		t.Fatalf("expected user filter, got %+v", deps.redemptions.LastFilter)
	}

	filter := model.RedemptionFilter{Status: model.RedemptionStatusCompleted, Limit: 5}
	if _, err := facade.Redemptions(context.Background(), filter); err != nil {
		t.Fatalf("redemptions returned error: %v", err)
	}
	if deps.redemptions.LastFilter != filter {
		t.Fatalf("expected filter to pass through, got %+v", deps.redemptions.LastFilter)
	}
}

func TestEcoFacadeRedeemPropagatesDomainErrors(t *testing.T) {
	facade, deps := newFacade()
	deps.ledger.RedeemFn = func(context.Context, int64, int64) (*model.Redemption, error) {
		return nil, domainErrors.ErrOutOfStock
	}
	if _, err := facade.Redeem(context.Background(), 1, 2); !errors.Is(err, domainErrors.ErrOutOfStock) {
		t.Fatalf("expected out of stock, got %v", err)
	}
}

func TestEcoFacadeBalance(t *testing.T) {
	facade, deps := newFacade()
	deps.pointsLog.Items = []model.PointsLogEntry{{ID: 1, UserID: 1, PointsDelta: -40, LogType: model.LogTypeRedeemVoucher}}

	summary, err := facade.Balance(context.Background(), 1)
	if err != nil {
		t.Fatalf("balance returned error: %v", err)
	}
	if summary.Current != 60 || summary.Redeemed != 40 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	history, err := facade.PointsHistory(context.Background(), 1)
	if err != nil || len(history) != 1 {
		t.Fatalf("unexpected history %v err=%v", history, err)
	}

	filter := model.PointsLogFilter{LogType: model.LogTypeRedeemVoucher, Limit: 10}
	if _, err := facade.PointsLog(context.Background(), filter); err != nil {
		t.Fatalf("points log returned error: %v", err)
	}
	if deps.pointsLog.LastFilter != filter {
		t.Fatalf("expected filter to pass through, got %+v", deps.pointsLog.LastFilter)
	}
}

func TestEcoFacadeGrants(t *testing.T) {
	facade, deps := newFacade()
	deps.grants.BatchFn = func(_ context.Context, limit int) ([]model.Grant, error) {
		return []model.Grant{{ID: 1}, {ID: 2}}[:limit], nil
	}

	grant, err := facade.EnqueueGrant(context.Background(), model.Grant{UserID: 1, Points: 25, LogType: model.LogTypePickupCompleted})
	if err != nil {
		t.Fatalf("enqueue returned error: %v", err)
	}
	if grant.Status != model.GrantStatusPending {
		t.Fatalf("expected pending grant, got %s", grant.Status)
	}

	batch, err := facade.GrantsForCrediting(context.Background(), 1)
	if err != nil || len(batch) != 1 {
		t.Fatalf("unexpected batch %v err=%v", batch, err)
	}

	credited, err := facade.CreditGrant(context.Background(), 1)
	if err != nil || credited.Status != model.GrantStatusCredited {
		t.Fatalf("unexpected credit result %+v err=%v", credited, err)
	}

	if err := facade.RejectGrant(context.Background(), 2); err != nil {
		t.Fatalf("reject returned error: %v", err)
	}
	if len(deps.grants.Rejected) != 1 || deps.grants.Rejected[0] != 2 {
		t.Fatalf("unexpected rejected ids %v", deps.grants.Rejected)
	}
}

func TestEcoFacadeHealthCheck(t *testing.T) {
	facade, deps := newFacade()
	if err := facade.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deps.health.err = errors.New("db down")
	if err := facade.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check error")
	}
	if deps.health.calls != 2 {
		t.Fatalf("expected two health calls, got %d", deps.health.calls)
	}
}
