package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"attendctl/internal/api"
	"attendctl/internal/export"
	"attendctl/internal/pager"
	"attendctl/internal/timefmt"
)

var (
	historyLimit int
	historyPages int
	historyAll   bool

	historyExportFormat string
	historyExportOut    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show your attendance history",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your full attendance history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 30, "Records per page")
	historyCmd.Flags().IntVar(&historyPages, "pages", 1, "Number of pages to load")
	historyCmd.Flags().BoolVar(&historyAll, "all", false, "Load every page")

	historyExportCmd.Flags().StringVar(&historyExportFormat, "format", "csv", "Output format: csv, json, xlsx")
	historyExportCmd.Flags().StringVar(&historyExportOut, "out", "", "Output file (default stdout; required for xlsx)")
	historyCmd.AddCommand(historyExportCmd)
}

func myAttendancePager(client *api.Client, limit int) *pager.Pager[api.AttendanceRecord] {
	return pager.New(func(ctx context.Context, page, limit int) ([]api.AttendanceRecord, api.Pagination, error) {
		return client.MyAttendance(ctx, page, limit)
	}, limit)
}

func runHistory(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(true)
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	p := myAttendancePager(client, historyLimit)

	fmt.Fprintln(os.Stderr, "Fetching attendance...")
	if err := p.Refresh(ctx); err != nil {
		fail(err)
	}
	for (historyAll || p.Cursor().Page < historyPages) && p.HasMore() {
		fmt.Fprintf(os.Stderr, "Loading page %d/%d...\n", p.Cursor().Page+1, p.Cursor().Pages)
		if _, err := p.LoadMore(ctx); err != nil {
			fail(err)
		}
	}

	printAttendance(p.Records(), false)

	if p.HasMore() {
		fmt.Printf("(%d of %d records shown; use --all for everything)\n",
			len(p.Records()), p.Cursor().Total)
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(true)
	if err != nil {
		fail(err)
	}

	records, err := myAttendancePager(client, 100).All(context.Background())
	if err != nil {
		fail(err)
	}

	out := os.Stdout
	if historyExportOut != "" {
		f, err := os.Create(historyExportOut)
		if err != nil {
			fail(fmt.Errorf("creating output file: %w", err))
		}
		defer f.Close()
		out = f
	}

	switch historyExportFormat {
	case "json":
		err = export.JSON(out, records)
	case "xlsx":
		if historyExportOut == "" {
			fail(fmt.Errorf("--out is required for xlsx export"))
		}
		err = export.XLSX(out, records)
	case "csv":
		err = export.CSV(out, records)
	default:
		fail(fmt.Errorf("unknown format %q (want csv, json or xlsx)", historyExportFormat))
	}
	if err != nil {
		fail(err)
	}

	if historyExportOut != "" {
		fmt.Printf("Exported %d records to %s\n", len(records), historyExportOut)
	}
	return nil
}

// printAttendance renders records as aligned rows; withEmployee adds the
// employee columns used by the admin listing.
func printAttendance(records []api.AttendanceRecord, withEmployee bool) {
	if len(records) == 0 {
		fmt.Println("No attendance records found.")
		return
	}
	for _, r := range records {
		line := fmt.Sprintf("%s  %s-%s", r.Date, timefmt.Clock(r.CheckInTime), timefmt.Clock(r.CheckOutTime))
		if worked := timefmt.Worked(r.CheckInTime, r.CheckOutTime); worked != "" {
			line += fmt.Sprintf(" (%s)", worked)
		}
		line += "  " + r.Status
		if withEmployee && r.EmployeeID != "" {
			line += fmt.Sprintf("  %s %s", r.EmployeeID, r.Name)
		}
		fmt.Println(line)
	}
}
