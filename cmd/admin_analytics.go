package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	analyticsFrom string
	analyticsTo   string
)

var adminAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show aggregate attendance analytics",
	Args:  cobra.NoArgs,
	RunE:  runAdminAnalytics,
}

func init() {
	adminAnalyticsCmd.Flags().StringVar(&analyticsFrom, "from", "", "Start date (YYYY-MM-DD)")
	adminAnalyticsCmd.Flags().StringVar(&analyticsTo, "to", "", "End date (YYYY-MM-DD)")
}

func runAdminAnalytics(cmd *cobra.Command, args []string) error {
	client := adminClient()

	a, err := client.AnalyticsReport(context.Background(), analyticsFrom, analyticsTo)
	if err != nil {
		fail(err)
	}

	fmt.Printf("Records: %d (%d complete, %d incomplete)\n",
		a.TotalRecords, a.CompleteDays, a.IncompleteDays)
	fmt.Printf("Average confidence: check-in %.4f, check-out %.4f\n",
		a.AverageConfidence.CheckIn, a.AverageConfidence.CheckOut)
	if len(a.TopEmployees) > 0 {
		fmt.Println("Top employees:")
		for _, e := range a.TopEmployees {
			fmt.Printf("  %-12s %-24s %d days\n", e.EmployeeID, e.Name, e.AttendanceDays)
		}
	}
	return nil
}
