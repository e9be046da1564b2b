package jobs

import (
	"log"
	"time"

	"github.com/lumierehotels/booking-api/database"
	"github.com/lumierehotels/booking-api/models"
)

// CompleteFinishedStays moves CONFIRMED bookings whose stay has ended to
// COMPLETED.
func CompleteFinishedStays() {
	log.Println("Running job: CompleteFinishedStays...")

	now := time.Now().UTC()

	result := database.DB.Model(&models.Booking{}).
		Where("status = ? AND check_out <= ?", models.StatusConfirmed, now).
		Update("status", models.StatusCompleted)

	if result.Error != nil {
		log.Printf("Error completing finished stays: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d booking(s) as completed.", result.RowsAffected)
	}
}
