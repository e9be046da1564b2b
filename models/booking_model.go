package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus is the closed status set for bookings. Values arriving from
// the outside (admin overrides, webhooks) must go through ParseBookingStatus
// before being written.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("invalid booking status %q", s)
}

// Terminal reports whether no further transition is allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo encodes the lifecycle state machine:
// PENDING → CONFIRMED → COMPLETED, PENDING → CANCELLED,
// CONFIRMED → CANCELLED. A booking never re-enters PENDING.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// Human-facing code used in emails and vouchers, e.g. LUM-9F3K2QW8.
	Reference string `gorm:"size:20;not null;unique" json:"reference"`

	// Nil for guest checkouts; GuestName/GuestEmail carry the identity then.
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	GuestName  string     `gorm:"size:255" json:"guest_name"`
	GuestEmail string     `gorm:"size:255;not null" json:"guest_email"`

	RoomID   uuid.UUID `gorm:"type:uuid;not null;index" json:"room_id"`
	CheckIn  time.Time `gorm:"not null" json:"check_in"`
	CheckOut time.Time `gorm:"not null" json:"check_out"`
	Adults   int       `gorm:"not null;default:2" json:"adults"`
	Children int       `gorm:"default:0" json:"children"`
	Extras   []string  `gorm:"serializer:json" json:"extras"`

	// Quoted at creation in euro cents and never recomputed; cancellation
	// keeps it as the refund/audit reference.
	TotalPrice int64 `gorm:"not null" json:"total_price"`

	Status BookingStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	CheckoutSessionID *string `gorm:"size:255;unique" json:"checkout_session_id,omitempty"`
	VoucherURL        *string `gorm:"size:512" json:"voucher_url,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Room Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Overlaps applies the half-open interval test against another stay.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}
