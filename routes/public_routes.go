package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumierehotels/booking-api/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	hotels := api.Group("/hotels")
	hotels.Get("", handlers.ListHotels)
	hotels.Get("/:slug", handlers.GetHotelBySlug)

	api.Get("/extras", handlers.ListExtras)
}
