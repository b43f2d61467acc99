package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"attendctl/internal/api"
	"attendctl/internal/export"
)

func strptr(s string) *string { return &s }

func floatptr(f float64) *float64 { return &f }

func sampleRecords() []api.AttendanceRecord {
	return []api.AttendanceRecord{
		{
			ID:                 1,
			EmployeeID:         "EMP001",
			Name:               "Ada Obi",
			Date:               "2025-03-14",
			CheckInTime:        strptr("2025-03-14 09:00:00"),
			CheckOutTime:       strptr("2025-03-14 17:12:00"),
			CheckInConfidence:  floatptr(0.9123),
			CheckOutConfidence: floatptr(0.8871),
			Status:             "present",
		},
		{
			ID:          2,
			EmployeeID:  "EMP002",
			Name:        `Bello, "JJ" Musa`,
			Date:        "2025-03-14",
			CheckInTime: strptr("2025-03-14 08:45:00"),
			Status:      "present",
		},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.CSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "date,employee_id,name,check_in,check_out,worked") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "8h 12m") {
		t.Errorf("worked span missing from %q", lines[1])
	}
	if !strings.Contains(lines[1], "0.9123") {
		t.Errorf("confidence missing from %q", lines[1])
	}
	// A name with commas and quotes must be quoted with doubled quotes.
	if !strings.Contains(lines[2], `"Bello, ""JJ"" Musa"`) {
		t.Errorf("field not escaped: %q", lines[2])
	}
}

func TestCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := export.CSV(&buf, nil); err != nil {
		t.Fatalf("CSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should be header only, got %d lines", len(lines))
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := export.JSON(&buf, sampleRecords()); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded []api.AttendanceRecord
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output did not decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0].EmployeeID != "EMP001" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded[1].CheckOutTime != nil {
		t.Error("missing check-out should stay null")
	}
}

func TestXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := export.XLSX(&buf, sampleRecords()); err != nil {
		t.Fatalf("XLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading workbook back: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Attendance" {
		t.Fatalf("sheets = %v, want [Attendance]", sheets)
	}

	rows, err := f.GetRows("Attendance")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "date" || rows[0][1] != "employee_id" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "EMP001" || rows[1][5] != "8h 12m" {
		t.Errorf("data row = %v", rows[1])
	}
}
