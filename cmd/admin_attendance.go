package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"attendctl/internal/api"
	"attendctl/internal/pager"
)

var (
	attDate     string
	attEmployee string
	attLimit    int
	attAll      bool
)

var adminAttendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "List attendance records across employees",
	Args:  cobra.NoArgs,
	RunE:  runAdminAttendance,
}

func init() {
	adminAttendanceCmd.Flags().StringVar(&attDate, "date", "", "Filter by date (YYYY-MM-DD)")
	adminAttendanceCmd.Flags().StringVar(&attEmployee, "employee", "", "Filter by employee ID")
	adminAttendanceCmd.Flags().IntVar(&attLimit, "limit", 50, "Records per page")
	adminAttendanceCmd.Flags().BoolVar(&attAll, "all", false, "Load every page")
}

func runAdminAttendance(cmd *cobra.Command, args []string) error {
	client := adminClient()

	filter := api.AttendanceFilter{Date: attDate, EmployeeID: attEmployee}
	p := pager.New(func(ctx context.Context, page, limit int) ([]api.AttendanceRecord, api.Pagination, error) {
		return client.Attendance(ctx, filter, page, limit)
	}, attLimit)

	ctx := context.Background()
	if err := p.Refresh(ctx); err != nil {
		fail(err)
	}
	for attAll && p.HasMore() {
		if _, err := p.LoadMore(ctx); err != nil {
			fail(err)
		}
	}

	printAttendance(p.Records(), true)
	if p.HasMore() {
		fmt.Printf("(%d of %d records shown; use --all for everything)\n",
			len(p.Records()), p.Cursor().Total)
	}
	return nil
}
