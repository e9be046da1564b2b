package utils

import (
	"math/rand"
	"time"

	"github.com/lumierehotels/booking-api/models"
	"gorm.io/gorm"
)

const referencePrefix = "LUM-"
const referenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueBookingReference returns an unused human-facing booking code
// like LUM-9F3K2QW8.
func GenerateUniqueBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, referenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := referencePrefix + string(b)

		var booking models.Booking
		err := tx.Where("reference = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
