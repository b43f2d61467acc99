package cmd

import (
	"github.com/spf13/cobra"

	"attendctl/internal/api"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations (admin role required)",
}

func init() {
	adminCmd.AddCommand(adminEmployeesCmd)
	adminCmd.AddCommand(adminAttendanceCmd)
	adminCmd.AddCommand(adminAnalyticsCmd)
	adminCmd.AddCommand(adminSettingsCmd)
	adminCmd.AddCommand(adminShiftsCmd)
}

// adminClient builds an authenticated client and checks the cached role
// locally before any request is made.
func adminClient() *api.Client {
	client, sess, err := newClient(true)
	if err != nil {
		fail(err)
	}
	if err := requireAdmin(sess); err != nil {
		fail(err)
	}
	return client
}
