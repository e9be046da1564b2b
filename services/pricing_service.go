package services

import (
	"errors"
	"math"
	"time"

	"github.com/lumierehotels/booking-api/models"
)

// TaxRate is the flat tax applied to every booking subtotal.
const TaxRate = 0.10

var ErrInvalidDateRange = errors.New("invalid date range")

// Quote is a fully computed price for a stay. All amounts are euro cents.
type Quote struct {
	Nights      int    `json:"nights"`
	SeasonName  string `json:"season_name"`
	NightlyRate int64  `json:"nightly_rate"`
	ExtrasTotal int64  `json:"extras_total"`
	Subtotal    int64  `json:"subtotal"`
	Tax         int64  `json:"tax"`
	Total       int64  `json:"total"`
}

// Nights returns the billable night count for a stay: the calendar-day span
// of [checkIn, checkOut), rounded up, never less than 1.
func Nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// ResolveSeason picks the season covering date. Seasons may overlap in the
// data; the highest multiplier wins, with the latest start date breaking
// exact ties. Returns nil when no season covers the date (multiplier 1.0).
func ResolveSeason(seasons []models.Season, date time.Time) *models.Season {
	var best *models.Season
	for i := range seasons {
		s := &seasons[i]
		if !s.Covers(date) {
			continue
		}
		if best == nil ||
			s.Multiplier > best.Multiplier ||
			(s.Multiplier == best.Multiplier && s.StartDate.After(best.StartDate)) {
			best = s
		}
	}
	return best
}

// ComputeQuote prices a stay in the given room. The season is resolved from
// the check-in date and its multiplier applies to every night. Currency math
// stays in integer cents; the multiplier product is rounded half away from
// zero before any summation.
func ComputeQuote(room models.Room, seasons []models.Season, extras []models.Extra, checkIn, checkOut, now time.Time) (*Quote, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return nil, ErrInvalidDateRange
	}

	nights := Nights(checkIn, checkOut)

	multiplier := 1.0
	seasonName := ""
	if season := ResolveSeason(seasons, checkIn); season != nil {
		multiplier = season.Multiplier
		seasonName = season.Name
	}

	nightly := int64(math.Round(float64(room.BasePrice) * multiplier))

	var extrasTotal int64
	for _, extra := range extras {
		extrasTotal += extra.PricePerNight * int64(nights)
	}

	subtotal := nightly*int64(nights) + extrasTotal
	tax := int64(math.Round(float64(subtotal) * TaxRate))

	return &Quote{
		Nights:      nights,
		SeasonName:  seasonName,
		NightlyRate: nightly,
		ExtrasTotal: extrasTotal,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       subtotal + tax,
	}, nil
}
