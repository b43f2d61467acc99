package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and attendance statistics",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(true)
	if err != nil {
		fail(err)
	}

	p, err := client.MyProfile(context.Background())
	if err != nil {
		fail(err)
	}

	fmt.Printf("%s <%s>\n", p.Employee.Name, p.Employee.Email)
	fmt.Printf("  ID: %s\n", p.Employee.EmployeeID)
	fmt.Printf("  Role: %s\n", p.Employee.Role)
	fmt.Printf("  Joined: %s\n", p.Employee.JoinedDate)
	fmt.Println("Statistics:")
	fmt.Printf("  Attendance days: %d (%d complete)\n",
		p.Statistics.TotalAttendanceDays, p.Statistics.CompleteDays)
	fmt.Printf("  Average confidence: %.4f\n", p.Statistics.AverageConfidence)
	return nil
}
