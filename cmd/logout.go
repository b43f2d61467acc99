package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"attendctl/internal/config"
	"attendctl/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	base, err := config.BaseDir()
	if err != nil {
		fail(err)
	}
	// Clearing is idempotent; logging out twice is fine.
	if err := session.Clear(base); err != nil {
		fail(err)
	}
	fmt.Println("Logged out.")
	return nil
}
