package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing is a rentable property record.
type Listing struct {
	ListingID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"listing_id"`
	Name          string    `gorm:"type:varchar(50);not null" json:"name"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Location      string    `gorm:"type:varchar(50);not null" json:"location"`
	PricePerNight float64   `gorm:"type:numeric(7,2);not null" json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:ListingID;constraint:OnDelete:SET NULL" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ListingID;constraint:OnDelete:SET NULL" json:"reviews,omitempty"`
}

// BeforeCreate assigns the id server-side; a client-supplied id is never honored.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	l.ListingID = uuid.New()
	return nil
}
