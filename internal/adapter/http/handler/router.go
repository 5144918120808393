package handler

import (
	"dah-coin-engine/config"
	"dah-coin-engine/internal/adapter/http/middleware"
	redisStore "dah-coin-engine/internal/adapter/storage/redis"
	"dah-coin-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	EconomySvc     ports.EconomyService
	EconomyCfg     config.EconomyConfig
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	economyHandler := NewEconomyHandler(deps.EconomySvc)
	coins := v1.Group("/coins")
	{
		coins.POST("/credit", rl("coins_credit"), economyHandler.CreditCoins)
		coins.POST("/spend", rl("coins_spend"), economyHandler.SpendCoins)
	}

	walletHandler := NewWalletHandler(deps.EconomySvc, deps.EconomyCfg)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("/:user_id", rl("wallets_read"), walletHandler.GetWallet)
		wallets.GET("/:user_id/transactions", rl("wallets_read"), walletHandler.GetTransactions)
		wallets.GET("/:user_id/usage", rl("wallets_read"), walletHandler.GetUsage)
	}

	return r
}
