package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
	"github.com/lumierehotels/booking-api/notifications"
	"github.com/lumierehotels/booking-api/payments"
	"github.com/lumierehotels/booking-api/services"
	"github.com/lumierehotels/booking-api/utils"
	"github.com/lumierehotels/booking-api/websocket"
	"gorm.io/gorm"
)

// cancellationWindow is the minimum lead time before check-in for a
// user-initiated cancellation.
const cancellationWindow = 48 * time.Hour

var (
	errRoomUnavailable = errors.New("room is not available for the selected dates")
	errPriceMismatch   = errors.New("quoted price does not match the selected stay")
	errUnknownExtra    = errors.New("unknown extra selected")
)

type CreateBookingRequest struct {
	RoomID     string   `json:"room_id" validate:"required,uuid"`
	CheckIn    string   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults     int      `json:"adults" validate:"omitempty,min=1,max=8"`
	Children   int      `json:"children" validate:"omitempty,min=0,max=8"`
	Extras     []string `json:"extras"`
	TotalPrice int64    `json:"total_price" validate:"required,gt=0"`
}

func parseStayDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t.UTC()
}

// CreateBooking quotes the stay, checks availability and inserts a PENDING
// booking in one transaction, then opens a hosted checkout session for it.
// The availability check runs under a lock on the room row so two
// concurrent requests for the same dates cannot both pass it.
func CreateBooking(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	roomID, _ := uuid.Parse(req.RoomID)
	checkIn := parseStayDate(req.CheckIn)
	checkOut := parseStayDate(req.CheckOut)
	if req.Adults == 0 {
		req.Adults = 2
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	var booking models.Booking
	var room models.Room
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := database.LockForUpdate(tx).First(&room, "id = ?", roomID).Error; err != nil {
			return gorm.ErrRecordNotFound
		}

		var seasons []models.Season
		if err := tx.Where("hotel_id = ?", room.HotelID).Find(&seasons).Error; err != nil {
			return err
		}

		var extras []models.Extra
		if len(req.Extras) > 0 {
			if err := tx.Where("slug IN ?", req.Extras).Find(&extras).Error; err != nil {
				return err
			}
			if len(extras) != len(req.Extras) {
				return errUnknownExtra
			}
		}

		quote, err := services.ComputeQuote(room, seasons, extras, checkIn, checkOut, time.Now().UTC())
		if err != nil {
			return err
		}
		if quote.Total != req.TotalPrice {
			return errPriceMismatch
		}

		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
				roomID,
				[]models.BookingStatus{models.StatusPending, models.StatusConfirmed},
				checkOut, checkIn).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return errRoomUnavailable
		}

		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return err
		}

		guestName := user.Name
		if guestName == "" {
			guestName = user.Email
		}
		booking = models.Booking{
			Reference:  reference,
			UserID:     &user.ID,
			GuestName:  guestName,
			GuestEmail: user.Email,
			RoomID:     room.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Adults:     req.Adults,
			Children:   req.Children,
			Extras:     req.Extras,
			TotalPrice: quote.Total,
			Status:     models.StatusPending,
		}
		return tx.Create(&booking).Error
	})

	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, errRoomUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "The room is not available for those dates"})
	case errors.Is(err, services.ErrInvalidDateRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date range"})
	case errors.Is(err, errPriceMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "The quoted total does not match the selected stay"})
	case errors.Is(err, errUnknownExtra):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "One or more selected extras do not exist"})
	default:
		log.Printf("🔥 Failed to create booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ?", room.HotelID).Error; err == nil {
		booking.Room = room
		booking.Room.Hotel = hotel
	}

	session, err := payments.CreateCheckoutSession(booking, room.Name, hotel.Name)
	if err != nil {
		// The booking stays PENDING; the stale-checkout sweep cancels it
		// if the guest never retries payment.
		log.Printf("🔥 Failed to open checkout session for booking %s: %v", booking.ID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment could not be initiated, please try again."})
	}

	booking.CheckoutSessionID = &session.ID
	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("checkout_session_id", session.ID).Error; err != nil {
		log.Printf("🔥 Failed to save checkout session id for booking %s: %v", booking.ID, err)
	}

	websocket.BroadcastBookingEvent("booking.created", booking)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking_id":   booking.ID,
		"reference":    booking.Reference,
		"checkout_url": session.URL,
	})
}

// GetMyBookings returns the caller's bookings, newest first.
func GetMyBookings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var bookings []models.Booking
	database.DB.
		Preload("Room.Hotel").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetBooking(c *fiber.Ctx) error {
	bookingID := c.Params("id")

	var booking models.Booking
	if err := database.DB.
		Preload("Room.Hotel").
		Preload("User").
		First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if !canAccessBooking(c, booking) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	return c.JSON(booking)
}

type CancelBookingRequest struct {
	Status string `json:"status" validate:"required"`
}

// CancelBooking handles PATCH on a booking. Guests may only cancel, and
// only while check-in is more than 48 hours away. The quoted total is left
// untouched as the refund reference.
func CancelBooking(c *fiber.Ctx) error {
	bookingID := c.Params("id")

	var req CancelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	status, err := models.ParseBookingStatus(req.Status)
	if err != nil || status != models.StatusCancelled {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only cancellation is allowed on this endpoint"})
	}

	var booking models.Booking
	if err := database.DB.Preload("Room.Hotel").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if !canAccessBooking(c, booking) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}

	if time.Until(booking.CheckIn) < cancellationWindow {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bookings cannot be cancelled less than 48 hours before check-in"})
	}
	if !booking.Status.CanTransitionTo(models.StatusCancelled) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only pending or confirmed bookings can be cancelled"})
	}

	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("status", models.StatusCancelled).Error; err != nil {
		log.Printf("🔥 Failed to cancel booking %s: %v", booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}
	booking.Status = models.StatusCancelled

	go notifications.SendCancellationEmail(bookingEmailData(booking))
	websocket.BroadcastBookingEvent("booking.cancelled", booking)

	return c.JSON(booking)
}

// GetBookingVoucher returns (generating on first request) the PDF voucher
// for a confirmed booking.
func GetBookingVoucher(c *fiber.Ctx) error {
	bookingID := c.Params("id")

	var booking models.Booking
	if err := database.DB.Preload("Room.Hotel").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if !canAccessBooking(c, booking) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied"})
	}
	if booking.Status != models.StatusConfirmed && booking.Status != models.StatusCompleted {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vouchers are only available for confirmed bookings"})
	}

	if booking.VoucherURL != nil {
		return c.JSON(fiber.Map{"voucher_url": *booking.VoucherURL})
	}

	url, err := services.GenerateBookingVoucher(booking)
	if err != nil {
		log.Printf("🔥 Failed to generate voucher for booking %s: %v", booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate voucher"})
	}

	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("voucher_url", url).Error; err != nil {
		log.Printf("🔥 Failed to save voucher url for booking %s: %v", booking.ID, err)
	}

	return c.JSON(fiber.Map{"voucher_url": url})
}

// canAccessBooking enforces the ownership guard: admins see everything,
// everyone else only their own bookings.
func canAccessBooking(c *fiber.Ctx, booking models.Booking) bool {
	if currentUserRole(c) == models.RoleAdmin {
		return true
	}
	return booking.UserID != nil && *booking.UserID == currentUserID(c)
}

func bookingEmailData(booking models.Booking) notifications.BookingEmailData {
	return notifications.BookingEmailData{
		GuestName:  booking.GuestName,
		GuestEmail: booking.GuestEmail,
		HotelName:  booking.Room.Hotel.Name,
		RoomName:   booking.Room.Name,
		CheckIn:    booking.CheckIn.Format("2006-01-02"),
		CheckOut:   booking.CheckOut.Format("2006-01-02"),
		TotalPrice: booking.TotalPrice,
		Reference:  booking.Reference,
		Extras:     booking.Extras,
	}
}
