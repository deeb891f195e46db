package routes

import (
	"food-booking-backend/controllers"

	"github.com/gin-gonic/gin"
)

// BookingRoutes registers the booking endpoints. Creating a booking is
// public (guests book tables without an account); reads and status changes
// belong to the staff dashboard and are admin-gated.
func BookingRoutes(r *gin.Engine, ctrl *controllers.BookingController, gate gin.HandlerFunc) {
	r.GET("/bookings", gate, ctrl.GetBookings())
	r.GET("/bookings/booking", gate, ctrl.GetBooking())
	r.GET("/bookings/available-tables", gate, ctrl.GetAvailableTables())
	r.POST("/bookings", ctrl.AddBooking())
	r.PATCH("/bookings", gate, ctrl.ChangeBookingStatus())
}
