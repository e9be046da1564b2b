package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"size:255" json:"name"`
	Email string    `gorm:"size:255;not null;unique" json:"email"`

	// Nil for accounts created via Google sign-in; those cannot use
	// credential login.
	PasswordHash *string `gorm:"size:255" json:"-"`

	Role  string  `gorm:"size:20;not null;default:'USER'" json:"role"`
	Image *string `gorm:"size:512" json:"image,omitempty"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
