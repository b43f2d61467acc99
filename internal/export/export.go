// Package export renders attendance history in machine-readable formats.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"attendctl/internal/api"
	"attendctl/internal/timefmt"
)

var headers = []string{
	"date", "employee_id", "name", "check_in", "check_out",
	"worked", "check_in_confidence", "check_out_confidence", "status",
}

func row(r api.AttendanceRecord) []any {
	return []any{
		r.Date,
		r.EmployeeID,
		r.Name,
		deref(r.CheckInTime),
		deref(r.CheckOutTime),
		timefmt.Worked(r.CheckInTime, r.CheckOutTime),
		confidence(r.CheckInConfidence),
		confidence(r.CheckOutConfidence),
		r.Status,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func confidence(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.4f", *v)
}

// CSV writes records as comma-separated values with a header row.
func CSV(w io.Writer, records []api.AttendanceRecord) error {
	if _, err := fmt.Fprintln(w, strings.Join(headers, ",")); err != nil {
		return err
	}
	for _, r := range records {
		cells := make([]string, 0, len(headers))
		for _, v := range row(r) {
			cells = append(cells, csvEscape(fmt.Sprint(v)))
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, ",")); err != nil {
			return err
		}
	}
	return nil
}

// csvEscape quotes a field when it contains a comma, quote or line break.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// JSON writes records as an indented JSON array.
func JSON(w io.Writer, records []api.AttendanceRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// XLSX writes records as a spreadsheet with one "Attendance" sheet.
func XLSX(w io.Writer, records []api.AttendanceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for i, r := range records {
		for col, v := range row(r) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
