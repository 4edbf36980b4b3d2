package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayhub/listings-service/internal/apperrors"
	"github.com/stayhub/listings-service/internal/models"
	"github.com/stayhub/listings-service/internal/repository"
	"github.com/stayhub/listings-service/pkg/rabbitmq"
)

type BookingService interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, listingID *uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

// CreateBooking inserts a booking for an existing listing. Resolution and
// insert share one transaction, so a failed resolution writes nothing.
func (s *bookingService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ListingID == nil {
		return apperrors.ErrListingNotFound
	}

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listingRepo.FindByIDTx(ctx, tx, *booking.ListingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrListingNotFound
			}
			return err
		}
		return s.bookingRepo.Create(ctx, tx, booking)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent("booking.created", booking.BookingID, booking)
	}

	return nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, listingID *uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, listingID, status)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (*models.Booking, error) {
	rows, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrBookingNotFound
	}
	return s.bookingRepo.FindByID(ctx, id)
}
