// Package seeder fills the database with synthetic listings, bookings and
// reviews for development. Reruns append rows; nothing is deduplicated.
package seeder

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/stayhub/listings-service/internal/models"
	"github.com/stayhub/listings-service/internal/repository"
)

var (
	adjectives = []string{"Cozy", "Sunny", "Rustic", "Modern", "Charming", "Spacious", "Quiet", "Seaside"}
	properties = []string{"Cabin", "Apartment", "Loft", "Cottage", "Villa", "Studio", "Bungalow", "Chalet"}
	locations  = []string{"Tahoe", "Lisbon", "Kyoto", "Cape Town", "Reykjavik", "Oaxaca", "Queenstown", "Tbilisi"}
	comments   = []string{
		"Great stay, would come back.",
		"Clean and exactly as described.",
		"The host was responsive and helpful.",
		"Nice location, a bit noisy at night.",
		"Perfect for a weekend getaway.",
	}

	// Booking dates are offsets from a fixed epoch so equal seeds generate
	// equal rows regardless of when the seeder runs.
	dateEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Summary reports how many rows a run inserted.
type Summary struct {
	Listings int
	Bookings int
	Reviews  int
}

type Seeder struct {
	listingRepo repository.ListingRepository
	bookingRepo repository.BookingRepository
	reviewRepo  repository.ReviewRepository
	rng         *rand.Rand
}

// New builds a Seeder with its own PRNG so runs are reproducible for a given
// seed.
func New(listingRepo repository.ListingRepository, bookingRepo repository.BookingRepository, reviewRepo repository.ReviewRepository, seed int64) *Seeder {
	return &Seeder{
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Run inserts n listings, each with up to three bookings and three reviews.
// The first insert error aborts the run.
func (s *Seeder) Run(ctx context.Context, n int) (Summary, error) {
	var sum Summary

	for i := 0; i < n; i++ {
		listing := s.randomListing()
		if err := s.listingRepo.Create(ctx, listing); err != nil {
			return sum, fmt.Errorf("insert listing %d: %w", i+1, err)
		}
		sum.Listings++

		for j := s.rng.Intn(4); j > 0; j-- {
			booking := s.randomBooking(listing)
			if err := s.bookingRepo.Create(ctx, s.bookingRepo.GetDB(), booking); err != nil {
				return sum, fmt.Errorf("insert booking for listing %s: %w", listing.ListingID, err)
			}
			sum.Bookings++
		}

		for j := s.rng.Intn(4); j > 0; j-- {
			review := s.randomReview(listing)
			if err := s.reviewRepo.Create(ctx, s.reviewRepo.GetDB(), review); err != nil {
				return sum, fmt.Errorf("insert review for listing %s: %w", listing.ListingID, err)
			}
			sum.Reviews++
		}
	}

	return sum, nil
}

func (s *Seeder) randomListing() *models.Listing {
	name := adjectives[s.rng.Intn(len(adjectives))] + " " + properties[s.rng.Intn(len(properties))]
	location := locations[s.rng.Intn(len(locations))]
	price := float64(30+s.rng.Intn(471)) + float64(s.rng.Intn(100))/100

	return &models.Listing{
		Name:          name,
		Description:   fmt.Sprintf("A %s in %s, close to everything.", name, location),
		Location:      location,
		PricePerNight: price,
	}
}

func (s *Seeder) randomBooking(listing *models.Listing) *models.Booking {
	statuses := []models.BookingStatus{models.StatusPending, models.StatusConfirmed, models.StatusCancelled}

	start := dateEpoch.AddDate(0, 0, s.rng.Intn(365))
	nights := 1 + s.rng.Intn(14)
	end := start.AddDate(0, 0, nights)

	listingID := listing.ListingID
	return &models.Booking{
		ListingID:  &listingID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: float64(nights) * listing.PricePerNight,
		Status:     statuses[s.rng.Intn(len(statuses))],
	}
}

func (s *Seeder) randomReview(listing *models.Listing) *models.Review {
	listingID := listing.ListingID
	return &models.Review{
		ListingID: &listingID,
		Rating:    1 + s.rng.Intn(5),
		Comment:   comments[s.rng.Intn(len(comments))],
	}
}
