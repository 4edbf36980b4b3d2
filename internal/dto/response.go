package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/stayhub/listings-service/internal/models"
)

type ListingResponse struct {
	ListingID     uuid.UUID `json:"listing_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"price_per_night"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingResponse struct {
	BookingID  uuid.UUID            `json:"booking_id"`
	Listing    *uuid.UUID           `json:"listing"`
	StartDate  string               `json:"start_date"`
	EndDate    string               `json:"end_date"`
	TotalPrice float64              `json:"total_price"`
	Status     models.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

type ReviewResponse struct {
	ReviewID  uuid.UUID  `json:"review_id"`
	Listing   *uuid.UUID `json:"listing"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToListingResponse(l *models.Listing) ListingResponse {
	return ListingResponse{
		ListingID:     l.ListingID,
		Name:          l.Name,
		Description:   l.Description,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:  b.BookingID,
		Listing:    b.ListingID,
		StartDate:  b.StartDate.Format(DateLayout),
		EndDate:    b.EndDate.Format(DateLayout),
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:  r.ReviewID,
		Listing:   r.ListingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
