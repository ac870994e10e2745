package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fairway/internal/models"
	"fairway/internal/schedule"
)

var (
	bookType  string
	bookDate  string
	bookStart int
	bookHours int
	bookName  string
	bookEmail string
	bookPhone string
)

func init() {
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Add a reservation",
		RunE:  runBook,
	}
	bookCmd.Flags().StringVar(&bookType, "type", "simulator", "bay: simulator or net")
	bookCmd.Flags().StringVar(&bookDate, "date", "", "date (YYYY-MM-DD)")
	bookCmd.Flags().IntVar(&bookStart, "start", 0, "start hour (9-21)")
	bookCmd.Flags().IntVar(&bookHours, "hours", 1, "duration in hours")
	bookCmd.Flags().StringVar(&bookName, "name", "", "customer name")
	bookCmd.Flags().StringVar(&bookEmail, "email", "", "customer email")
	bookCmd.Flags().StringVar(&bookPhone, "phone", "", "customer phone")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer.Close()

	draft := models.Draft{
		ResourceType:  models.ResourceType(bookType),
		Date:          bookDate,
		StartHour:     bookStart,
		DurationHours: bookHours,
		Customer: models.Customer{
			Name:  bookName,
			Email: bookEmail,
			Phone: bookPhone,
		},
	}

	res, err := svc.Submit(cmd.Context(), draft)
	if err != nil {
		var conflict *schedule.ConflictError
		if errors.As(err, &conflict) {
			return fmt.Errorf("slot taken: %s", conflict.Error())
		}
		return err
	}

	fmt.Printf("Booked %s on %s at %s for %d hour(s), total $%s (id %s)\n",
		res.ResourceType.DisplayName(), res.Date, schedule.FormatHour(res.StartHour),
		res.DurationHours, models.FormatCents(res.TotalCents), res.ID)
	return nil
}
