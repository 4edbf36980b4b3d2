package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known booking statuses. No transition
// order is enforced between them.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking reserves a listing for a date range. ListingID is nullable: deleting
// a listing detaches its bookings rather than removing them.
type Booking struct {
	BookingID  uuid.UUID     `gorm:"type:uuid;primaryKey" json:"booking_id"`
	ListingID  *uuid.UUID    `gorm:"type:uuid;index" json:"listing_id"`
	StartDate  time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time     `gorm:"type:date;not null" json:"end_date"`
	TotalPrice float64       `gorm:"type:numeric(10,2);not null" json:"total_price"`
	Status     BookingStatus `gorm:"type:varchar(10);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	b.BookingID = uuid.New()
	return nil
}
