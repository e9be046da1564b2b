package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lumierehotels/booking-api/handlers"
	"github.com/lumierehotels/booking-api/middleware"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", handlers.GetDashboardStats)
	admin.Get("/bookings", handlers.AdminGetAllBookings)
	admin.Patch("/bookings", handlers.AdminUpdateBookingStatus)

	reports := admin.Group("/reports")
	reports.Get("/bookings", handlers.ExportBookingsReport)

	admin.Post("/upload-signature", handlers.GenerateUploadSignature)

	// The feed authenticates in-band with the first socket message, so the
	// upgrade route sits outside the JWT middleware.
	api.Use("/admin-feed", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/admin-feed", websocket.New(handlers.ServeAdminFeed))
}
