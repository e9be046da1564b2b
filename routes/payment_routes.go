package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumierehotels/booking-api/handlers"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// The provider authenticates with a signed header, not a session.
	api.Post("/payments/webhook", handlers.HandleCheckoutWebhook)
}
