// Package routes wires the HTTP API.
//
// Every JSON response is wrapped as {"status", "message", "data"}; the
// payload described for each endpoint is the value of "data".
//
//	GET /health                          database ping
//	GET /api/orders                      data: {count, next, previous, results}
//	GET /api/orders/search               data: {count, next, previous, results}
//	GET /api/orders/statistics           data: statistics object
//	GET /api/orders/statistics/export    xlsx or pdf file, not enveloped
//	GET /api/orders/:order_id            data: order detail
//	GET /api/menus, /api/categories, /api/menu-items
//	                                     data: list
//
// Errors set "status" to "error" and describe the failure in "message".
package routes

import (
	"context"
	"time"

	"github.com/Govind-619/OrderDesk/config"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/gin-gonic/gin"
)

// Options configures the optional middleware of the router
type Options struct {
	// Cache backs the order list response cache; nil disables caching
	Cache    utils.ResponseCache
	CacheTTL time.Duration
	// RateLimiter throttles /api per client; nil disables throttling
	RateLimiter *utils.RateLimiter
}

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", healthCheck)

	api := router.Group("/api")
	api.Use(utils.RateLimitMiddleware(opts.RateLimiter))
	{
		initOrderRoutes(api, opts)
		initMenuRoutes(api)
	}

	return router
}

func healthCheck(c *gin.Context) {
	if err := pingDB(c.Request.Context()); err != nil {
		utils.LogError("Health check failed: %v", err)
		utils.RespondError(c, "Database unavailable", err)
		return
	}
	utils.Success(c, "OK", gin.H{"service": utils.AppName})
}

func pingDB(ctx context.Context) error {
	if config.DB == nil {
		return utils.ServiceUnavailableError("Database not initialized", nil)
	}
	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return utils.ServiceUnavailableError("Database unavailable", err)
	}
	return nil
}
