package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "attendctl",
	Short: "attendctl - terminal client for the face attendance system",
	Long: `attendctl is a command-line client for an employee attendance backend
using facial recognition and geofencing. All verification happens
server-side; this tool logs in, submits check-ins/check-outs with a
captured face image and coordinates, and browses attendance data.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(checkInCmd)
	rootCmd.AddCommand(checkOutCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(adminCmd)
}
