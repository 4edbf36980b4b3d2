package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/stayhub/listings-service/config"
	"github.com/stayhub/listings-service/internal/repository"
	"github.com/stayhub/listings-service/internal/seeder"
	"github.com/stayhub/listings-service/pkg/database"
)

func main() {
	if err := newSeedCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newSeedCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:          "seed N",
		Short:        "Insert N synthetic listings with random bookings and reviews",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("N must be a non-negative integer, got %q", args[0])
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			cfg := config.Load()
			db := database.NewPostgresDB(cfg.DSN())

			s := seeder.New(
				repository.NewListingRepository(db),
				repository.NewBookingRepository(db),
				repository.NewReviewRepository(db),
				seed,
			)

			sum, err := s.Run(cmd.Context(), n)
			if err != nil {
				return err
			}

			log.Printf("seeded %d listings, %d bookings, %d reviews", sum.Listings, sum.Bookings, sum.Reviews)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed for reproducible runs (defaults to current time)")
	return cmd
}
