package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kusheen8/BoooKit/config/db"
	"github.com/kusheen8/BoooKit/controllers/booking_controller"
	"github.com/kusheen8/BoooKit/middlewares"
)

func RegisterBookingRoutes(router *gin.Engine) {
	bookingController := booking_controller.NewBookingController(db.DB)

	api := router.Group("/api")
	{
		api.POST("/bookings", middlewares.NewRateLimiter("10-M", "createBooking"), bookingController.CreateBooking)
		api.GET("/bookings", bookingController.GetAllBookings)
		api.GET("/bookings/:id", bookingController.GetBookingByID)
	}
}
