package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/lumierehotels/booking-api/configs"
	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
	"github.com/lumierehotels/booking-api/notifications"
	"github.com/lumierehotels/booking-api/payments"
	"github.com/lumierehotels/booking-api/websocket"
	"gorm.io/gorm"
)

var errAlreadyProcessed = errors.New("event already processed")

// HandleCheckoutWebhook receives asynchronous checkout events from the
// payment provider. The signature is verified before anything else; an
// unverifiable event is rejected with no state change. Processing is
// idempotent: a booking only transitions out of PENDING once, so replayed
// events are acknowledged without side effects.
func HandleCheckoutWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signature := c.Get(payments.SignatureHeader)
	if signature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No signature"})
	}

	secret := config.Config("CHECKOUT_WEBHOOK_SECRET")
	if err := payments.VerifyWebhookSignature(payload, signature, secret, time.Now()); err != nil {
		log.Printf("⚠️ Webhook signature verification failed: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid signature"})
	}

	event, err := payments.ParseWebhookEvent(payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse webhook payload"})
	}

	switch event.Type {
	case payments.EventCheckoutCompleted:
		return handleCheckoutCompleted(c, event)
	case payments.EventCheckoutExpired:
		return handleCheckoutExpired(c, event)
	default:
		log.Printf("Ignoring webhook event type %s", event.Type)
		return c.JSON(fiber.Map{"received": true})
	}
}

func handleCheckoutCompleted(c *fiber.Ctx, event *payments.WebhookEvent) error {
	bookingID := event.BookingID()
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event has no booking id"})
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := database.LockForUpdate(tx).First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		if booking.Status != models.StatusPending {
			return errAlreadyProcessed
		}
		booking.Status = models.StatusConfirmed
		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", models.StatusConfirmed).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	case errors.Is(err, errAlreadyProcessed):
		return c.JSON(fiber.Map{"message": "Webhook already processed"})
	case err != nil:
		log.Printf("🔥 Failed to confirm booking %s: %v", bookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
	}

	log.Printf("✅ Booking %s confirmed via checkout session %s", booking.Reference, event.Data.Object.ID)

	if err := database.DB.Preload("Room.Hotel").First(&booking, "id = ?", booking.ID).Error; err == nil {
		data := bookingEmailData(booking)
		go func() {
			notifications.SendBookingConfirmation(data)
			notifications.SendAdminNotification(data)
		}()
		websocket.BroadcastBookingEvent("booking.confirmed", booking)
	}

	return c.JSON(fiber.Map{"received": true})
}

func handleCheckoutExpired(c *fiber.Ctx, event *payments.WebhookEvent) error {
	bookingID := event.BookingID()
	if bookingID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Event has no booking id"})
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := database.LockForUpdate(tx).First(&booking, "id = ?", bookingID).Error; err != nil {
			return err
		}
		// Expiry is system-initiated: the 48h cancellation window does not
		// apply, but only a PENDING booking can expire.
		if booking.Status != models.StatusPending {
			return errAlreadyProcessed
		}
		booking.Status = models.StatusCancelled
		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
			Update("status", models.StatusCancelled).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	case errors.Is(err, errAlreadyProcessed):
		return c.JSON(fiber.Map{"message": "Webhook already processed"})
	case err != nil:
		log.Printf("🔥 Failed to expire booking %s: %v", bookingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
	}

	log.Printf("❌ Booking %s cancelled, payment expired", booking.Reference)
	websocket.BroadcastBookingEvent("booking.expired", booking)

	return c.JSON(fiber.Map{"received": true})
}
