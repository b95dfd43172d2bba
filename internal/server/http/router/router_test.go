package router

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/ecopoints/internal/app"
	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
	"github.com/polkiloo/ecopoints/internal/domain/model"
	"github.com/polkiloo/ecopoints/internal/metrics"
	"github.com/polkiloo/ecopoints/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/ecopoints/internal/test"
)

func serve(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	facade := testhelpers.EcoFacadeStub{
		RedemptionFacadeStub: testhelpers.RedemptionFacadeStub{
			RedeemFn: func(_ context.Context, userID, voucherID int64) (*model.Redemption, error) {
				if voucherID == 99 {
					return nil, domainErrors.ErrOutOfStock
				}
				return &model.Redemption{ID: 1, UserID: userID, VoucherID: voucherID, Status: model.RedemptionStatusPending}, nil
			},
		},
	}
	engine := Setup(facade, metrics.New(), testhelpers.DiscardLogger())

	tests := []struct {
		method string
		target string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/api/vouchers", "", http.StatusOK},
		{http.MethodGet, "/api/vouchers/1", "", http.StatusOK},
		{http.MethodPost, "/api/users/1/redemptions", `{"voucher_id":2}`, http.StatusCreated},
		{http.MethodPost, "/api/users/1/redemptions", `{"voucher_id":99}`, http.StatusConflict},
		{http.MethodGet, "/api/users/1/redemptions", "", http.StatusOK},
		{http.MethodGet, "/api/users/1/balance", "", http.StatusOK},
		{http.MethodGet, "/api/users/1/points-log", "", http.StatusOK},
		{http.MethodPost, "/api/admin/users", `{"name":"bob"}`, http.StatusCreated},
		{http.MethodGet, "/api/admin/vouchers", "", http.StatusOK},
		{http.MethodPost, "/api/admin/vouchers", `{"title":"Cup","points_required":5,"quantity":1}`, http.StatusCreated},
		{http.MethodPut, "/api/admin/vouchers/1", `{"title":"Cup","points_required":5,"quantity":0}`, http.StatusOK},
		{http.MethodGet, "/api/admin/redemptions?status=pending", "", http.StatusOK},
		{http.MethodPost, "/api/admin/redemptions/1/fulfill", `{"coupon_code":"X"}`, http.StatusOK},
		{http.MethodDelete, "/api/admin/redemptions/1", "", http.StatusNoContent},
		{http.MethodGet, "/api/admin/points-log", "", http.StatusOK},
		{http.MethodPost, "/api/admin/grants", `{"user_id":1,"points":5,"log_type":"feedback_reward"}`, http.StatusAccepted},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		resp := serve(engine, tt.method, tt.target, tt.body)
		if resp.Code != tt.status {
			t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.target, tt.status, resp.Code)
		}
		if resp.Header().Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: expected request id header", tt.method, tt.target)
		}
	}
}

func TestSetupExposesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	engine := Setup(testhelpers.EcoFacadeStub{}, m, testhelpers.DiscardLogger())

	serve(engine, http.MethodGet, "/api/vouchers", "")

	resp := serve(engine, http.MethodGet, "/metrics", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `ecopoints_http_requests_total{code="200",path="/api/vouchers"}`) {
		t.Fatalf("expected http metrics in exposition, got:\n%s", resp.Body.String())
	}
}

func TestModuleBindsFacade(t *testing.T) {
	var engine *gin.Engine
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(&app.EcoFacade{}, metrics.New(), testhelpers.DiscardLogger()),
		Module,
		fx.Populate(&engine),
	)
	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	if engine == nil {
		t.Fatal("expected engine to be provided")
	}
}

var _ handlers.EcoFacade = testhelpers.EcoFacadeStub{}
var _ handlers.EcoFacade = (*app.EcoFacade)(nil)
