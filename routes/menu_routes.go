package routes

import (
	"github.com/Govind-619/OrderDesk/controllers"
	"github.com/gin-gonic/gin"
)

// initMenuRoutes registers the read-only catalog endpoints
func initMenuRoutes(router *gin.RouterGroup) {
	router.GET("/menus", controllers.ListMenus)
	router.GET("/categories", controllers.ListCategories)
	router.GET("/menu-items", controllers.ListMenuItems)
}
