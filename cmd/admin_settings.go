package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var adminSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage system settings",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsBulkCmd = &cobra.Command{
	Use:   "bulk <key=value> [key=value...]",
	Short: "Update several settings at once",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSettingsBulk,
}

func init() {
	adminSettingsCmd.AddCommand(settingsListCmd)
	adminSettingsCmd.AddCommand(settingsSetCmd)
	adminSettingsCmd.AddCommand(settingsBulkCmd)
}

func runSettingsList(cmd *cobra.Command, args []string) error {
	client := adminClient()
	settings, err := client.Settings(context.Background())
	if err != nil {
		fail(err)
	}
	for _, s := range settings {
		fmt.Printf("%-28s = %-16s %s\n", s.Key, s.Value, s.Description)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	client := adminClient()
	key, value := args[0], args[1]
	if err := client.UpdateSetting(context.Background(), key, value); err != nil {
		fail(err)
	}
	fmt.Printf("Setting %s updated.\n", key)
	return nil
}

func runSettingsBulk(cmd *cobra.Command, args []string) error {
	updates := map[string]string{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			fail(fmt.Errorf("invalid argument %q (want key=value)", arg))
		}
		updates[key] = value
	}

	client := adminClient()
	updated, err := client.BulkUpdateSettings(context.Background(), updates)
	if err != nil {
		fail(err)
	}
	fmt.Printf("Updated %d settings: %s\n", len(updated), strings.Join(updated, ", "))
	return nil
}
