package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayhub/listings-service/internal/apperrors"
	"github.com/stayhub/listings-service/internal/models"
	"github.com/stayhub/listings-service/internal/repository"
	"github.com/stayhub/listings-service/pkg/rabbitmq"
)

type ReviewService interface {
	CreateReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListReviewsByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	publisher   *rabbitmq.Publisher
}

func NewReviewService(reviewRepo repository.ReviewRepository, listingRepo repository.ListingRepository, publisher *rabbitmq.Publisher) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, review *models.Review) error {
	if review.ListingID == nil {
		return apperrors.ErrListingNotFound
	}

	err := s.reviewRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.listingRepo.FindByIDTx(ctx, tx, *review.ListingID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrListingNotFound
			}
			return err
		}
		return s.reviewRepo.Create(ctx, tx, review)
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent("review.created", review.ReviewID, review)
	}

	return nil
}

func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviewsByListing(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	if _, err := s.listingRepo.FindByID(ctx, listingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrListingNotFound
		}
		return nil, err
	}
	return s.reviewRepo.FindByListingID(ctx, listingID)
}
