// fairway is an admin CLI over the reservation store: print a day's
// schedule, add bookings, list the log, export reports.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fairway/internal/schedule"
	"fairway/internal/service"
	"fairway/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fairway",
	Short: "Manage golf bay reservations",
	Long: `Manage reservations for the simulator and net & mat bays.

environment:
    FAIRWAY_DB    path to the reservation database (overridden by --db)
`,
	SilenceUsage: true,
}

var dbPath string

func init() {
	def := os.Getenv("FAIRWAY_DB")
	if def == "" {
		def = "data/fairway.db"
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", def, "reservation database path")
}

// openService opens the store and wires a quiet booking service around it.
func openService() (*service.BookingService, io.Closer, error) {
	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	logger := zerolog.New(os.Stderr)
	svc := service.NewBookingService(st, schedule.SystemClock{}, nil, nil, &logger)
	return svc, st, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
