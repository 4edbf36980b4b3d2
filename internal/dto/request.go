package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/stayhub/listings-service/internal/apperrors"
	"github.com/stayhub/listings-service/internal/models"
)

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

// CreateListingRequest carries the client-settable listing fields. The id and
// timestamps are server-assigned, so a caller supplying them has no effect.
type CreateListingRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
}

func (r *CreateListingRequest) ToModel() (*models.Listing, error) {
	if r.Name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if r.Location == "" {
		return nil, apperrors.Validation("location is required")
	}
	if r.PricePerNight < 0 {
		return nil, apperrors.Validation("price_per_night must not be negative")
	}
	return &models.Listing{
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
	}, nil
}

// CreateBookingRequest references the listing by id and carries dates as
// YYYY-MM-DD strings.
type CreateBookingRequest struct {
	Listing    string  `json:"listing"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}

func (r *CreateBookingRequest) ToModel() (*models.Booking, error) {
	listingID, err := uuid.Parse(r.Listing)
	if err != nil {
		return nil, apperrors.Validation("listing must be a valid id")
	}
	if r.StartDate == "" {
		return nil, apperrors.Validation("start_date is required")
	}
	if r.EndDate == "" {
		return nil, apperrors.Validation("end_date is required")
	}
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return nil, apperrors.Validation("start_date must be formatted as " + DateLayout)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return nil, apperrors.Validation("end_date must be formatted as " + DateLayout)
	}
	if !start.Before(end) {
		return nil, apperrors.Validation("Start date must be before end date")
	}
	if r.TotalPrice < 0 {
		return nil, apperrors.Validation("total_price must not be negative")
	}

	status := models.StatusPending
	if r.Status != "" {
		status = models.BookingStatus(r.Status)
		if !status.Valid() {
			return nil, apperrors.Validation("status must be one of pending, confirmed, cancelled")
		}
	}

	return &models.Booking{
		ListingID:  &listingID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: r.TotalPrice,
		Status:     status,
	}, nil
}

// UpdateBookingStatusRequest sets a booking status. Any known status may be
// set at any time; there is no transition order.
type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateBookingStatusRequest) ToStatus() (models.BookingStatus, error) {
	status := models.BookingStatus(r.Status)
	if !status.Valid() {
		return "", apperrors.Validation("status must be one of pending, confirmed, cancelled")
	}
	return status, nil
}

type CreateReviewRequest struct {
	Listing string `json:"listing"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *CreateReviewRequest) ToModel() (*models.Review, error) {
	listingID, err := uuid.Parse(r.Listing)
	if err != nil {
		return nil, apperrors.Validation("listing must be a valid id")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, apperrors.Validation("rating must be between 1 and 5")
	}
	if r.Comment == "" {
		return nil, apperrors.Validation("comment is required")
	}
	return &models.Review{
		ListingID: &listingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}, nil
}
