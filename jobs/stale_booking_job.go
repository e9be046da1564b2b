package jobs

import (
	"log"
	"time"

	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
)

const stalePendingAge = 24 * time.Hour

// CancelStalePendingBookings releases rooms held by PENDING bookings whose
// checkout session was never completed. The payment provider sends an
// expiry webhook for these, this sweep is the backstop for missed
// deliveries.
func CancelStalePendingBookings() {
	log.Println("Running job: CancelStalePendingBookings...")

	cutoff := time.Now().UTC().Add(-stalePendingAge)

	result := database.DB.Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", models.StatusPending, cutoff).
		Update("status", models.StatusCancelled)

	if result.Error != nil {
		log.Printf("Error cancelling stale pending bookings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d stale pending booking(s).", result.RowsAffected)
	}
}
