package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
)

// ListHotels returns the full catalog with nested rooms and seasons, best
// rated first.
func ListHotels(c *fiber.Ctx) error {
	var hotels []models.Hotel
	if err := database.DB.
		Preload("Rooms").
		Preload("Seasons").
		Order("rating desc").
		Find(&hotels).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch hotels"})
	}
	return c.JSON(hotels)
}

func GetHotelBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var hotel models.Hotel
	if err := database.DB.
		Preload("Rooms").
		Preload("Seasons").
		Where("slug = ?", slug).
		First(&hotel).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hotel not found"})
	}
	return c.JSON(hotel)
}

func ListExtras(c *fiber.Ctx) error {
	var extras []models.Extra
	if err := database.DB.Order("category, name").Find(&extras).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch extras"})
	}
	return c.JSON(extras)
}
