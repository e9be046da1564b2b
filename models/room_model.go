package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoomTypeStandard     = "standard"
	RoomTypeSuperior     = "superior"
	RoomTypeDeluxe       = "deluxe"
	RoomTypeSuite        = "suite"
	RoomTypePresidential = "presidential"
)

type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HotelID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rooms_hotel_slug" json:"hotel_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Slug        string    `gorm:"size:255;not null;uniqueIndex:idx_rooms_hotel_slug" json:"slug"`
	Type        string    `gorm:"size:20;not null" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	SizeSqm     int       `json:"size_sqm"`
	BedType     string    `gorm:"size:100" json:"bed_type"`

	// Base nightly rate in euro cents, before the season multiplier.
	BasePrice int64 `gorm:"not null" json:"base_price"`

	Image     string   `gorm:"size:512" json:"image"`
	Amenities []string `gorm:"serializer:json" json:"amenities"`
	Features  []string `gorm:"serializer:json" json:"features"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ValidRoomType reports whether t is one of the closed room-type set.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeStandard, RoomTypeSuperior, RoomTypeDeluxe, RoomTypeSuite, RoomTypePresidential:
		return true
	}
	return false
}
