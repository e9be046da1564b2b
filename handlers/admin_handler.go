package handlers

import (
	"fmt"
	"log"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	config "github.com/lumierehotels/booking-api/configs"
	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
	"github.com/lumierehotels/booking-api/websocket"
	"github.com/xuri/excelize/v2"
)

type monthRevenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// GetDashboardStats returns the admin KPIs: revenue this month, active
// bookings, occupancy today, user count, the ten most recent bookings and a
// 12-month revenue series. All amounts are euro cents.
func GetDashboardStats(c *fiber.Ctx) error {
	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var monthlyRevenue int64
	database.DB.Model(&models.Booking{}).
		Where("status IN ? AND created_at >= ?",
			[]models.BookingStatus{models.StatusConfirmed, models.StatusCompleted}, startOfMonth).
		Select("COALESCE(SUM(total_price), 0)").Row().Scan(&monthlyRevenue)

	var activeBookings int64
	database.DB.Model(&models.Booking{}).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&activeBookings)

	var totalRooms int64
	database.DB.Model(&models.Room{}).Count(&totalRooms)

	var bookedToday int64
	database.DB.Model(&models.Booking{}).
		Where("status = ? AND check_in <= ? AND check_out > ?", models.StatusConfirmed, now, now).
		Count(&bookedToday)

	occupancy := 0
	if totalRooms > 0 {
		occupancy = int(math.Round(float64(bookedToday) / float64(totalRooms) * 100))
	}

	var totalUsers int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&totalUsers)

	var recentBookings []models.Booking
	database.DB.
		Preload("User").
		Preload("Room.Hotel").
		Order("created_at desc").
		Limit(10).
		Find(&recentBookings)

	monthlyChart := make([]monthRevenue, 0, 12)
	for i := 11; i >= 0; i-- {
		start := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)

		var revenue int64
		database.DB.Model(&models.Booking{}).
			Where("status IN ? AND created_at >= ? AND created_at < ?",
				[]models.BookingStatus{models.StatusConfirmed, models.StatusCompleted}, start, end).
			Select("COALESCE(SUM(total_price), 0)").Row().Scan(&revenue)

		monthlyChart = append(monthlyChart, monthRevenue{
			Month:   start.Format("Jan"),
			Revenue: revenue,
		})
	}

	return c.JSON(fiber.Map{
		"monthly_revenue": monthlyRevenue,
		"active_bookings": activeBookings,
		"occupancy":       occupancy,
		"total_users":     totalUsers,
		"recent_bookings": recentBookings,
		"monthly_chart":   monthlyChart,
	})
}

// AdminGetAllBookings returns every booking, newest first.
func AdminGetAllBookings(c *fiber.Ctx) error {
	var bookings []models.Booking
	if err := database.DB.
		Preload("User").
		Preload("Room.Hotel").
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}
	return c.JSON(bookings)
}

type AdminUpdateBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Status    string `json:"status" validate:"required"`
}

// AdminUpdateBookingStatus lets an administrator set a booking's status
// directly. The value must be one of the four known statuses; the 48-hour
// window and the transition table are deliberately not enforced here, that
// is the administrative trust boundary.
func AdminUpdateBookingStatus(c *fiber.Ctx) error {
	var req AdminUpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.Preload("Room.Hotel").First(&booking, "id = ?", req.BookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("status", status).Error; err != nil {
		log.Printf("🔥 Failed to update booking %s status: %v", booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}
	booking.Status = status

	websocket.BroadcastBookingEvent("booking.status_overridden", booking)

	return c.JSON(booking)
}

// ExportBookingsReport streams an xlsx of bookings created inside an
// optional [start, end] range.
func ExportBookingsReport(c *fiber.Ctx) error {
	start := c.Query("start")
	end := c.Query("end")

	query := database.DB.Preload("User").Preload("Room.Hotel").Order("created_at desc")
	if start != "" {
		query = query.Where("created_at >= ?", start)
	}
	if end != "" {
		query = query.Where("created_at <= ?", fmt.Sprintf("%sT23:59:59Z", end))
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch bookings"})
	}

	f := excelize.NewFile()
	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"Reference", "Guest", "Email", "Hotel", "Room",
		"CheckIn", "CheckOut", "Nights", "Extras", "TotalEUR", "Status", "CreatedAt",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, b := range bookings {
		row := i + 2
		nights := int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), b.Reference)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.GuestName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.GuestEmail)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), b.Room.Hotel.Name)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), b.Room.Name)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), b.CheckIn.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), b.CheckOut.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), nights)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), fmt.Sprintf("%v", b.Extras))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), float64(b.TotalPrice)/100)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), string(b.Status))
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), b.CreatedAt.Format(time.RFC3339))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report"})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bookings.xlsx"`)
	return c.Send(buf.Bytes())
}

// GenerateUploadSignature creates a signed Cloudinary upload ticket so the
// admin frontend can push hotel imagery directly.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: "lumiere_hotel_images",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    "lumiere_hotel_images",
	})
}
