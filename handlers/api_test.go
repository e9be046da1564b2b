package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
	"github.com/lumierehotels/booking-api/payments"
	"github.com/lumierehotels/booking-api/routes"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testJWTSecret     = "test-secret"
	testWebhookSecret = "whsec_test"
	testPassword      = "password123"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("CHECKOUT_WEBHOOK_SECRET", testWebhookSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Hotel{}, &models.Season{},
		&models.Room{}, &models.Extra{}, &models.Booking{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	app := fiber.New()
	routes.PublicRoutes(app)
	routes.AuthRoutes(app)
	routes.BookingRoutes(app)
	routes.PaymentRoutes(app)
	routes.AdminRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, role string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	passwordHash := string(hashed)
	user := models.User{Name: name, Email: email, PasswordHash: &passwordHash, Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	claims := jwtv4.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwtv4.NewWithClaims(jwtv4.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func createCatalog(t *testing.T) (models.Hotel, models.Room) {
	t.Helper()
	hotel := models.Hotel{Name: "Lumière Palace", Slug: "lumiere-palace", Location: "Barcelona"}
	if err := database.DB.Create(&hotel).Error; err != nil {
		t.Fatalf("failed to create hotel: %v", err)
	}
	room := models.Room{
		HotelID:   hotel.ID,
		Name:      "Habitación Deluxe",
		Slug:      "deluxe",
		Type:      models.RoomTypeDeluxe,
		BasePrice: 32000,
		Capacity:  2,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return hotel, room
}

func createBooking(t *testing.T, user *models.User, room models.Room, checkIn, checkOut time.Time, status models.BookingStatus) models.Booking {
	t.Helper()
	booking := models.Booking{
		Reference:  fmt.Sprintf("LUM-%08d", time.Now().UnixNano()%100000000),
		GuestName:  "Test Guest",
		GuestEmail: "guest@example.com",
		RoomID:     room.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     2,
		TotalPrice: 105600,
		Status:     status,
	}
	if user != nil {
		booking.UserID = &user.ID
		booking.GuestName = user.Name
		booking.GuestEmail = user.Email
	}
	if err := database.DB.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("failed to decode response %s: %v", raw, err)
	}
}

func stubCheckout(t *testing.T) {
	t.Helper()
	orig := payments.CreateCheckoutSession
	payments.CreateCheckoutSession = func(booking models.Booking, roomName, hotelName string) (*payments.CheckoutSession, error) {
		return &payments.CheckoutSession{
			ID:  "cs_test_" + booking.Reference,
			URL: "https://checkout.test/session/" + booking.Reference,
		}, nil
	}
	t.Cleanup(func() { payments.CreateCheckoutSession = orig })
}

func futureDate(days int) time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
}

func dateString(tm time.Time) string {
	return tm.Format("2006-01-02")
}

func TestRegisterUser(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/register", fiber.Map{
		"name":     "Ana García",
		"email":    "ana@example.com",
		"password": testPassword,
	}, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	if body["email"] != "ana@example.com" {
		t.Errorf("email = %v, want ana@example.com", body["email"])
	}
	if body["role"] != models.RoleUser {
		t.Errorf("role = %v, want %s", body["role"], models.RoleUser)
	}
}

func TestRegisterUserRejectsShortPassword(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/register", fiber.Map{
		"name":     "Ana García",
		"email":    "ana@example.com",
		"password": "12345",
	}, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a 5-character password", resp.StatusCode)
	}
}

func TestRegisterUserRejectsDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	createUser(t, "Ana García", "ana@example.com", models.RoleUser)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/register", fiber.Map{
		"name":     "Ana Impostora",
		"email":    "ana@example.com",
		"password": testPassword,
	}, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409 for duplicate email", resp.StatusCode)
	}
}

func TestLoginUser(t *testing.T) {
	app := setupTestApp(t)
	createUser(t, "Ana García", "ana@example.com", models.RoleUser)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/auth/login", fiber.Map{
		"email":    "ana@example.com",
		"password": testPassword,
	}, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["token"] == "" {
		t.Error("login response has no token")
	}

	resp, err = app.Test(jsonRequest("POST", "/api/v1/auth/login", fiber.Map{
		"email":    "ana@example.com",
		"password": "wrong-password",
	}, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 for wrong password", resp.StatusCode)
	}
}

func TestCreateBooking(t *testing.T) {
	app := setupTestApp(t)
	stubCheckout(t)
	user := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)

	// 3 nights at base price 32000, no season, no extras:
	// subtotal 96000, tax 9600, total 105600.
	resp, err := app.Test(jsonRequest("POST", "/api/v1/bookings", fiber.Map{
		"room_id":     room.ID.String(),
		"check_in":    dateString(futureDate(30)),
		"check_out":   dateString(futureDate(33)),
		"adults":      2,
		"total_price": 105600,
	}, tokenFor(t, user)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, raw)
	}

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	reference, _ := body["reference"].(string)
	if !strings.HasPrefix(reference, "LUM-") || len(reference) != 12 {
		t.Errorf("reference = %q, want LUM- prefix and 8 code characters", reference)
	}
	if body["checkout_url"] == "" {
		t.Error("response has no checkout_url")
	}

	var stored models.Booking
	if err := database.DB.First(&stored, "reference = ?", reference).Error; err != nil {
		t.Fatalf("booking not persisted: %v", err)
	}
	if stored.Status != models.StatusPending {
		t.Errorf("status = %s, want PENDING", stored.Status)
	}
	if stored.TotalPrice != 105600 {
		t.Errorf("total price = %d, want 105600", stored.TotalPrice)
	}
	if stored.CheckoutSessionID == nil || *stored.CheckoutSessionID == "" {
		t.Error("checkout session id was not saved")
	}
}

func TestCreateBookingRejectsPriceMismatch(t *testing.T) {
	app := setupTestApp(t)
	stubCheckout(t)
	user := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/bookings", fiber.Map{
		"room_id":     room.ID.String(),
		"check_in":    dateString(futureDate(30)),
		"check_out":   dateString(futureDate(33)),
		"total_price": 1,
	}, tokenFor(t, user)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a mismatched quote", resp.StatusCode)
	}

	var count int64
	database.DB.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("booking count = %d, want 0 after rejected creation", count)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	app := setupTestApp(t)
	stubCheckout(t)
	user := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)

	// Existing CONFIRMED stay on [base+2, base+4) blocks a request for
	// [base, base+3); the intervals share the night at base+2.
	createBooking(t, nil, room, futureDate(32), futureDate(34), models.StatusConfirmed)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/bookings", fiber.Map{
		"room_id":     room.ID.String(),
		"check_in":    dateString(futureDate(30)),
		"check_out":   dateString(futureDate(33)),
		"total_price": 105600,
	}, tokenFor(t, user)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409 for overlapping dates", resp.StatusCode)
	}
}

func TestCreateBookingIgnoresCancelledOverlap(t *testing.T) {
	app := setupTestApp(t)
	stubCheckout(t)
	user := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)

	createBooking(t, nil, room, futureDate(32), futureDate(34), models.StatusCancelled)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/bookings", fiber.Map{
		"room_id":     room.ID.String(),
		"check_in":    dateString(futureDate(30)),
		"check_out":   dateString(futureDate(33)),
		"total_price": 105600,
	}, tokenFor(t, user)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 when the only overlap is CANCELLED", resp.StatusCode)
	}
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/bookings", fiber.Map{}, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	// The jwt middleware answers 400 for a missing header and 401 for a bad
	// token; either way the request must not reach the handler.
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 without a token", resp.StatusCode)
	}

	resp, err = app.Test(jsonRequest("POST", "/api/v1/bookings", fiber.Map{}, "not-a-jwt"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 with a garbage token", resp.StatusCode)
	}
}

func TestGetBookingOwnership(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	other := createUser(t, "Luis Pérez", "luis@example.com", models.RoleUser)
	admin := createUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	_, room := createCatalog(t)
	booking := createBooking(t, &owner, room, futureDate(30), futureDate(33), models.StatusConfirmed)

	url := "/api/v1/bookings/" + booking.ID.String()

	resp, _ := app.Test(jsonRequest("GET", url, nil, tokenFor(t, other)))
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("non-owner status = %d, want 403", resp.StatusCode)
	}

	resp, _ = app.Test(jsonRequest("GET", url, nil, tokenFor(t, owner)))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("owner status = %d, want 200", resp.StatusCode)
	}

	resp, _ = app.Test(jsonRequest("GET", url, nil, tokenFor(t, admin)))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("admin status = %d, want 200", resp.StatusCode)
	}
}

func TestCancelBookingOutsideWindow(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)
	booking := createBooking(t, &owner, room, futureDate(10), futureDate(13), models.StatusConfirmed)

	resp, err := app.Test(jsonRequest("PATCH", "/api/v1/bookings/"+booking.ID.String(),
		fiber.Map{"status": "CANCELLED"}, tokenFor(t, owner)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, raw)
	}

	var stored models.Booking
	database.DB.First(&stored, "id = ?", booking.ID)
	if stored.Status != models.StatusCancelled {
		t.Errorf("status = %s, want CANCELLED", stored.Status)
	}
	if stored.TotalPrice != booking.TotalPrice {
		t.Errorf("total price changed on cancellation: %d → %d", booking.TotalPrice, stored.TotalPrice)
	}
}

func TestCancelBookingInsideWindowFails(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)
	booking := createBooking(t, &owner, room, futureDate(1), futureDate(4), models.StatusConfirmed)

	resp, err := app.Test(jsonRequest("PATCH", "/api/v1/bookings/"+booking.ID.String(),
		fiber.Map{"status": "CANCELLED"}, tokenFor(t, owner)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 inside the 48h window", resp.StatusCode)
	}

	var stored models.Booking
	database.DB.First(&stored, "id = ?", booking.ID)
	if stored.Status != models.StatusConfirmed {
		t.Errorf("status = %s, want CONFIRMED unchanged", stored.Status)
	}
}

func TestCancelBookingRejectsOtherStatuses(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)
	booking := createBooking(t, &owner, room, futureDate(10), futureDate(13), models.StatusPending)

	resp, err := app.Test(jsonRequest("PATCH", "/api/v1/bookings/"+booking.ID.String(),
		fiber.Map{"status": "COMPLETED"}, tokenFor(t, owner)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a non-cancellation status", resp.StatusCode)
	}
}

func TestCancelCompletedBookingFails(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)
	booking := createBooking(t, &owner, room, futureDate(10), futureDate(13), models.StatusCompleted)

	resp, err := app.Test(jsonRequest("PATCH", "/api/v1/bookings/"+booking.ID.String(),
		fiber.Map{"status": "CANCELLED"}, tokenFor(t, owner)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for a terminal booking", resp.StatusCode)
	}
}

func TestListHotels(t *testing.T) {
	app := setupTestApp(t)
	createCatalog(t)

	resp, err := app.Test(jsonRequest("GET", "/api/v1/hotels", nil, ""))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var hotels []models.Hotel
	decodeBody(t, resp, &hotels)
	if len(hotels) != 1 {
		t.Fatalf("got %d hotels, want 1", len(hotels))
	}
	if len(hotels[0].Rooms) != 1 {
		t.Errorf("got %d rooms, want 1 preloaded", len(hotels[0].Rooms))
	}
}

func TestGetHotelBySlug(t *testing.T) {
	app := setupTestApp(t)
	hotel, _ := createCatalog(t)

	resp, _ := app.Test(jsonRequest("GET", "/api/v1/hotels/"+hotel.Slug, nil, ""))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	resp, _ = app.Test(jsonRequest("GET", "/api/v1/hotels/no-such-hotel", nil, ""))
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404 for unknown slug", resp.StatusCode)
	}
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	app := setupTestApp(t)
	user := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	admin := createUser(t, "Admin", "admin@example.com", models.RoleAdmin)

	resp, _ := app.Test(jsonRequest("GET", "/api/v1/admin/stats", nil, tokenFor(t, user)))
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("user status = %d, want 403", resp.StatusCode)
	}

	resp, _ = app.Test(jsonRequest("GET", "/api/v1/admin/stats", nil, tokenFor(t, admin)))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("admin status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminOverrideBookingStatus(t *testing.T) {
	app := setupTestApp(t)
	admin := createUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	_, room := createCatalog(t)
	booking := createBooking(t, nil, room, futureDate(1), futureDate(3), models.StatusConfirmed)

	// Inside the 48h window; the admin override ignores it.
	resp, err := app.Test(jsonRequest("PATCH", "/api/v1/admin/bookings", fiber.Map{
		"booking_id": booking.ID.String(),
		"status":     "CANCELLED",
	}, tokenFor(t, admin)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, raw)
	}

	var stored models.Booking
	database.DB.First(&stored, "id = ?", booking.ID)
	if stored.Status != models.StatusCancelled {
		t.Errorf("status = %s, want CANCELLED", stored.Status)
	}

	resp, _ = app.Test(jsonRequest("PATCH", "/api/v1/admin/bookings", fiber.Map{
		"booking_id": booking.ID.String(),
		"status":     "REFUNDED",
	}, tokenFor(t, admin)))
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unknown status value", resp.StatusCode)
	}
}

func TestGetBookingVoucherGuards(t *testing.T) {
	app := setupTestApp(t)
	owner := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)

	pending := createBooking(t, &owner, room, futureDate(30), futureDate(33), models.StatusPending)
	resp, _ := app.Test(jsonRequest("GET", "/api/v1/bookings/"+pending.ID.String()+"/voucher", nil, tokenFor(t, owner)))
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("pending booking voucher status = %d, want 400", resp.StatusCode)
	}

	confirmed := createBooking(t, &owner, room, futureDate(40), futureDate(43), models.StatusConfirmed)
	voucherURL := "https://res.cloudinary.com/lumiere/vouchers/test.pdf"
	database.DB.Model(&models.Booking{}).Where("id = ?", confirmed.ID).
		Update("voucher_url", voucherURL)

	resp, err := app.Test(jsonRequest("GET", "/api/v1/bookings/"+confirmed.ID.String()+"/voucher", nil, tokenFor(t, owner)))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("cached voucher status = %d, want 200", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["voucher_url"] != voucherURL {
		t.Errorf("voucher_url = %q, want the stored URL", body["voucher_url"])
	}
}

func TestCreateBookingConcurrentRequestsSingleWinner(t *testing.T) {
	app := setupTestApp(t)
	stubCheckout(t)
	user := createUser(t, "Ana García", "ana@example.com", models.RoleUser)
	_, room := createCatalog(t)
	token := tokenFor(t, user)

	body := fiber.Map{
		"room_id":     room.ID.String(),
		"check_in":    dateString(futureDate(30)),
		"check_out":   dateString(futureDate(33)),
		"total_price": 105600,
	}

	created := 0
	for i := 0; i < 2; i++ {
		resp, err := app.Test(jsonRequest("POST", "/api/v1/bookings", body, token))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode == fiber.StatusCreated {
			created++
		} else if resp.StatusCode != fiber.StatusConflict {
			t.Fatalf("status = %d, want 201 or 409", resp.StatusCode)
		}
	}
	if created != 1 {
		t.Errorf("created %d bookings for the same room and dates, want exactly 1", created)
	}

	var count int64
	database.DB.Model(&models.Booking{}).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Count(&count)
	if count != 1 {
		t.Errorf("active booking count = %d, want 1", count)
	}
}
