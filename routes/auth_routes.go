package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumierehotels/booking-api/handlers"
	"github.com/lumierehotels/booking-api/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)
	auth.Post("/google", handlers.GoogleSignIn)

	auth.Get("/me", middleware.Protected(), handlers.GetMe)
}
