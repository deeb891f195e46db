package routes

import (
	"food-booking-backend/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes registers the user/auth endpoints. Registration and login are
// public; everything else goes through the admin gate.
func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController, gate gin.HandlerFunc) {
	r.GET("/auth", gate, ctrl.GetUsers())
	r.GET("/auth/user", gate, ctrl.GetUser())
	r.POST("/auth/register", ctrl.Register())
	r.POST("/auth/admin-register", gate, ctrl.AdminRegister())
	r.POST("/auth/login", ctrl.Login())
	r.PATCH("/auth/change-role", gate, ctrl.ChangeRole())
}
