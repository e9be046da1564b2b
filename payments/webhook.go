package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"

	// SignatureHeader carries the provider signature on webhook requests.
	SignatureHeader = "Checkout-Signature"

	signatureTolerance = 5 * time.Minute
)

var ErrInvalidSignature = errors.New("invalid webhook signature")

// WebhookEvent is the provider's envelope for asynchronous checkout events.
// The booking id travels in the session metadata.
type WebhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// BookingID extracts the booking reference from the event metadata.
func (e WebhookEvent) BookingID() string {
	return e.Data.Object.Metadata["booking_id"]
}

// VerifyWebhookSignature checks a "t=<unix>,v1=<hex>" header against the
// payload: v1 must be HMAC-SHA256(secret, "<t>.<payload>") and t must be
// within the tolerance window. An unverifiable event is rejected before any
// state change happens.
func VerifyWebhookSignature(payload []byte, header, secret string, now time.Time) error {
	var timestamp string
	var signature string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signature = kv[1]
		}
	}
	if timestamp == "" || signature == "" {
		return ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	age := now.Sub(time.Unix(ts, 0))
	if age > signatureTolerance || age < -signatureTolerance {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s", timestamp, payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// ParseWebhookEvent decodes a verified payload.
func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// SignWebhookPayload produces the header value the provider would send for
// payload at the given time. Used by tests and the local webhook replayer.
func SignWebhookPayload(payload []byte, secret string, at time.Time) string {
	timestamp := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s.%s", timestamp, payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}
