package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	config "github.com/lumierehotels/booking-api/configs"
	"github.com/lumierehotels/booking-api/models"
)

// CheckoutSession is the provider's token for an in-progress payment
// attempt, linked to exactly one booking.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession opens a hosted checkout session for a booking. It is
// a package variable so tests can stub the provider call.
var CreateCheckoutSession = createCheckoutSession

func createCheckoutSession(booking models.Booking, roomName, hotelName string) (*CheckoutSession, error) {
	apiBase := config.Config("CHECKOUT_API_BASE_URL")
	apiKey := config.Config("CHECKOUT_API_KEY")
	frontendURL := config.Config("FRONTEND_URL")

	// The amount is the total quoted at booking creation, echoed verbatim.
	// The provider charges exactly this; nothing is recomputed here.
	payload := map[string]interface{}{
		"mode":           "payment",
		"customer_email": booking.GuestEmail,
		"metadata": map[string]string{
			"booking_id": booking.ID.String(),
		},
		"line_items": []map[string]interface{}{
			{
				"name":        fmt.Sprintf("%s — %s", roomName, hotelName),
				"description": fmt.Sprintf("%s → %s", booking.CheckIn.Format("2006-01-02"), booking.CheckOut.Format("2006-01-02")),
				"currency":    "eur",
				"unit_amount": booking.TotalPrice,
				"quantity":    1,
			},
		},
		"success_url": fmt.Sprintf("%s/booking/success?session_id={CHECKOUT_SESSION_ID}", frontendURL),
		"cancel_url":  fmt.Sprintf("%s/booking?cancelled=true", frontendURL),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/v1/checkout/sessions", apiBase), bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to create checkout session: %s", string(respBody))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
