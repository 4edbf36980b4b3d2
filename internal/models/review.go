package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a 1-5 star rating with a comment, attached to a listing.
type Review struct {
	ReviewID  uuid.UUID  `gorm:"type:uuid;primaryKey" json:"review_id"`
	ListingID *uuid.UUID `gorm:"type:uuid;index" json:"listing_id"`
	Rating    int        `gorm:"not null" json:"rating"`
	Comment   string     `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time  `json:"created_at"`

	Listing *Listing `gorm:"foreignKey:ListingID" json:"listing,omitempty"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	r.ReviewID = uuid.New()
	return nil
}
