package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stayhub/listings-service/internal/models"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *models.Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	FindByIDTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Listing, error)
	FindAll(ctx context.Context) ([]models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type listingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return r.FindByIDTx(ctx, r.db, id)
}

// FindByIDTx resolves a listing inside the caller's transaction so bookings
// and reviews never reference a listing that vanished mid-request.
func (r *listingRepository) FindByIDTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Listing, error) {
	var listing models.Listing
	if err := tx.WithContext(ctx).First(&listing, "listing_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindAll(ctx context.Context) ([]models.Listing, error) {
	var listings []models.Listing
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

func (r *listingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Listing{}, "listing_id = ?", id)
	return res.RowsAffected, res.Error
}
