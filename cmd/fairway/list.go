package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fairway/internal/models"
	"fairway/internal/schedule"
)

var listDate string

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations",
		RunE:  runList,
	}
	listCmd.Flags().StringVar(&listDate, "date", "", "only this date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer.Close()

	reservations, err := svc.Reservations(cmd.Context())
	if err != nil {
		return err
	}

	for i := range reservations {
		r := &reservations[i]
		if listDate != "" && r.Date != listDate {
			continue
		}
		fmt.Printf("%s  %s  %s %s  %dh  $%s  %s <%s>\n",
			r.ID, r.Date, schedule.FormatHour(r.StartHour), r.ResourceType.DisplayName(),
			r.DurationHours, models.FormatCents(r.TotalCents),
			r.Customer.Name, r.Customer.Email)
	}
	return nil
}
