package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Extra is an optional add-on service selectable during booking, billed
// once per night of the stay.
type Extra struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug        string    `gorm:"size:100;not null;unique" json:"slug"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Category    string    `gorm:"size:100" json:"category"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:512" json:"image"`

	// Price per night in euro cents.
	PricePerNight int64 `gorm:"not null" json:"price_per_night"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Extra) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
