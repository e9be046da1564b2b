package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumierehotels/booking-api/handlers"
	"github.com/lumierehotels/booking-api/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Get("", handlers.GetMyBookings)
	bookings.Post("", handlers.CreateBooking)
	bookings.Get("/:id", handlers.GetBooking)
	bookings.Patch("/:id", handlers.CancelBooking)
	bookings.Get("/:id/voucher", handlers.GetBookingVoucher)
}
