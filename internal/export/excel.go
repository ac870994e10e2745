// Package export renders reservation reports as Excel workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fairway/internal/models"
	"fairway/internal/schedule"
)

// DayReport builds a workbook for one date: one sheet per bay with the
// rendered grid, plus a sheet of the raw reservation rows for that date.
func DayReport(grid *schedule.DayGrid, reservations []models.Reservation) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeGridSheet(f, models.ResourceSimulator.DisplayName(), true, grid.Simulator); err != nil {
		return nil, err
	}
	if err := writeGridSheet(f, models.ResourceNet.DisplayName(), false, grid.Net); err != nil {
		return nil, err
	}
	if err := writeReservationSheet(f, grid.Date, reservations); err != nil {
		return nil, err
	}
	return f, nil
}

func writeGridSheet(f *excelize.File, name string, first bool, slots []schedule.Slot) error {
	if first {
		// excelize creates Sheet1 by default; rename it instead.
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}

	if err := writeRow(f, name, 1, []any{"Time", "State", "Booked By"}); err != nil {
		return err
	}
	if err := boldRow(f, name, 1, 3); err != nil {
		return err
	}

	for i, s := range slots {
		row := []any{schedule.FormatHour(s.Hour), string(s.State), s.Label}
		if err := writeRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeReservationSheet(f *excelize.File, date string, reservations []models.Reservation) error {
	const sheet = "Reservations"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []any{"ID", "Bay", "Date", "Start", "Hours", "Total", "Customer", "Email", "Phone"}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, sheet, 1, len(header)); err != nil {
		return err
	}

	row := 2
	for i := range reservations {
		r := &reservations[i]
		if r.Date != date {
			continue
		}
		values := []any{
			r.ID, r.ResourceType.DisplayName(), r.Date,
			schedule.FormatHour(r.StartHour), r.DurationHours,
			models.FormatCents(r.TotalCents),
			r.Customer.Name, r.Customer.Email, r.Customer.Phone,
		}
		if err := writeRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row, cols int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(cols, row)
	return f.SetCellStyle(sheet, start, end, style)
}
