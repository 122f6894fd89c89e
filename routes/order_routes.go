package routes

import (
	"github.com/Govind-619/OrderDesk/controllers"
	"github.com/Govind-619/OrderDesk/utils"
	"github.com/gin-gonic/gin"
)

// initOrderRoutes registers the order reporting endpoints
func initOrderRoutes(router *gin.RouterGroup, opts Options) {
	orders := router.Group("/orders")
	{
		// Only the list is cached
		orders.GET("", utils.CacheMiddleware(opts.Cache, opts.CacheTTL), controllers.ListOrders)
		orders.GET("/search", controllers.SearchOrders)
		orders.GET("/statistics", controllers.GetOrderStatistics)
		orders.GET("/statistics/export", controllers.ExportOrderStatistics)
		orders.GET("/:order_id", controllers.GetOrderDetail)
	}
}
