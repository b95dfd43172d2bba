package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/ecopoints/internal/metrics"
	"github.com/polkiloo/ecopoints/internal/server/http/handlers"
	"github.com/polkiloo/ecopoints/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.EcoFacade, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.DecompressRequest(middleware.DefaultMaxBodyBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	userHandler := handlers.NewUserHandler(facade)
	voucherHandler := handlers.NewVoucherHandler(facade)
	redemptionHandler := handlers.NewRedemptionHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)
	grantHandler := handlers.NewGrantHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	api := engine.Group("/api")
	api.GET("/vouchers", voucherHandler.Active)
	api.GET("/vouchers/:voucherID", voucherHandler.Get)

	user := api.Group("/users/:userID")
	user.POST("/redemptions", redemptionHandler.Redeem)
	user.GET("/redemptions", redemptionHandler.UserList)
	user.GET("/balance", balanceHandler.Summary)
	user.GET("/points-log", balanceHandler.History)

	admin := api.Group("/admin")
	admin.POST("/users", userHandler.Create)
	admin.GET("/vouchers", voucherHandler.All)
	admin.POST("/vouchers", voucherHandler.Create)
	admin.PUT("/vouchers/:voucherID", voucherHandler.Update)
	admin.GET("/redemptions", redemptionHandler.List)
	admin.POST("/redemptions/:redemptionID/fulfill", redemptionHandler.Fulfill)
	admin.DELETE("/redemptions/:redemptionID", redemptionHandler.Discard)
	admin.GET("/points-log", balanceHandler.PointsLog)
	admin.POST("/grants", grantHandler.Enqueue)

	return engine
}
