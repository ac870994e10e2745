package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fairway/internal/export"
	"fairway/internal/models"
)

var (
	exportDate string
	exportOut  string
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a day report as an Excel workbook",
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportDate, "date", "", "date (YYYY-MM-DD, default today)")
	exportCmd.Flags().StringVar(&exportOut, "out", "day-report.xlsx", "output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer.Close()

	date := exportDate
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	grid, err := svc.DaySchedule(cmd.Context(), date)
	if err != nil {
		return err
	}
	reservations, err := svc.Reservations(cmd.Context())
	if err != nil {
		return err
	}

	f, err := export.DayReport(grid, reservations)
	if err != nil {
		return err
	}
	if err := f.SaveAs(exportOut); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	fmt.Printf("Wrote %s\n", exportOut)
	return nil
}
