package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fairway/internal/models"
	"fairway/internal/schedule"
)

var scheduleDate string

func init() {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the day grid for both bays",
		RunE:  runSchedule,
	}
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	svc, closer, err := openService()
	if err != nil {
		return err
	}
	defer closer.Close()

	now := time.Now()
	date := scheduleDate
	if date == "" {
		date = now.Format(models.DateLayout)
	}

	grid, err := svc.DaySchedule(cmd.Context(), date)
	if err != nil {
		return err
	}

	fmt.Printf("Schedule for %s\n", schedule.FormatDate(now, grid.Date))
	printGrid(models.ResourceSimulator.DisplayName(), grid.Simulator)
	printGrid(models.ResourceNet.DisplayName(), grid.Net)
	return nil
}

func printGrid(name string, slots []schedule.Slot) {
	fmt.Printf("\n%s\n", name)
	for _, s := range slots {
		line := fmt.Sprintf("  %-9s %s", schedule.FormatHour(s.Hour), s.State)
		if s.Label != "" {
			line += " (" + s.Label + ")"
		}
		fmt.Println(line)
	}
}
