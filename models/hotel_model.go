package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hotel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;unique" json:"slug"`
	Tagline     string    `gorm:"size:255" json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	Country     string    `gorm:"size:100" json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Stars       int       `json:"stars"`
	Image       string    `gorm:"size:512" json:"image"`
	Gallery     []string  `gorm:"serializer:json" json:"gallery"`
	Amenities   []string  `gorm:"serializer:json" json:"amenities"`
	Highlights  []string  `gorm:"serializer:json" json:"highlights"`

	// Lowest nightly rate across the hotel's rooms, in euro cents.
	PriceFrom int64 `json:"price_from"`

	Rooms   []Room   `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Seasons []Season `gorm:"foreignKey:HotelID" json:"seasons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Season is a [StartDate, EndDate) interval whose multiplier scales the
// nightly rate of every room in the hotel.
type Season struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HotelID    uuid.UUID `gorm:"type:uuid;not null;index" json:"hotel_id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	Multiplier float64   `gorm:"not null" json:"multiplier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Season) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Covers reports whether date falls inside the season's half-open interval.
func (s Season) Covers(date time.Time) bool {
	return !date.Before(s.StartDate) && date.Before(s.EndDate)
}
