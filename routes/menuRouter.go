package routes

import (
	"food-booking-backend/controllers"

	"github.com/gin-gonic/gin"
)

// MenuRoutes registers the menu endpoints: reads are public, writes are
// admin-gated.
func MenuRoutes(r *gin.Engine, ctrl *controllers.MenuController, gate gin.HandlerFunc) {
	r.GET("/menu", ctrl.GetMenuItems())
	r.GET("/menu/item", ctrl.GetMenuItem())
	r.POST("/menu", gate, ctrl.AddMenuItem())
	r.PATCH("/menu", gate, ctrl.UpdateMenuItem())
	r.DELETE("/menu", gate, ctrl.DeleteMenuItem())
}
