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

type ListingService interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	ListListings(ctx context.Context) ([]models.Listing, error)
	UpdateListing(ctx context.Context, id uuid.UUID, updated *models.Listing) (*models.Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

type listingService struct {
	repo      repository.ListingRepository
	publisher *rabbitmq.Publisher
}

func NewListingService(repo repository.ListingRepository, publisher *rabbitmq.Publisher) ListingService {
	return &listingService{repo: repo, publisher: publisher}
}

func (s *listingService) CreateListing(ctx context.Context, listing *models.Listing) error {
	if err := s.repo.Create(ctx, listing); err != nil {
		return fmt.Errorf("create listing: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent("listing.created", listing.ListingID, listing)
	}

	return nil
}

func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context) ([]models.Listing, error) {
	return s.repo.FindAll(ctx)
}

func (s *listingService) UpdateListing(ctx context.Context, id uuid.UUID, updated *models.Listing) (*models.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the client-settable fields move over; id and timestamps stay
	// server-controlled.
	listing.Name = updated.Name
	listing.Description = updated.Description
	listing.Location = updated.Location
	listing.PricePerNight = updated.PricePerNight

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	return listing, nil
}

func (s *listingService) DeleteListing(ctx context.Context, id uuid.UUID) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrListingNotFound
	}
	return nil
}
