package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/taskmgr/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure taskmgr settings.

Settings are stored in config.toml inside the config directory and never
include the tasks themselves.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsOrderCmd = &cobra.Command{
	Use:   "order <none|asc|desc>",
	Short: "Set the default sort order",
	Long: `Set the order applied to the task list when the TUI starts.

Available orders:
  none - Keep insertion order
  asc  - Sort A to Z
  desc - Sort Z to A`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"none", "asc", "desc"},
	RunE:      runSettingsOrder,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsOrderCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if active == nil || active.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := active.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Tasks]")
	cmd.Printf("  Default order: %s (%s)\n", settings.Tasks.DefaultOrder, settings.Tasks.DefaultOrder.Label())
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Title: %s\n", settings.UI.Title)
	cmd.Println()

	cmd.Println("[MCP]")
	if settings.MCP.RateLimited() {
		cmd.Printf("  Rate limit: %g req/s\n", settings.MCP.RateLimit)
		cmd.Printf("  Burst: %d\n", settings.MCP.Burst)
	} else {
		cmd.Println("  Rate limit: off")
	}
	cmd.Println()

	if active.Config != nil {
		cmd.Printf("Stored in: %s\n", active.Config.Path())
	}

	return nil
}

func runSettingsOrder(cmd *cobra.Command, args []string) error {
	if active == nil || active.Settings == nil {
		return errors.New("settings service not configured")
	}

	order, err := domain.ParseSortOrder(args[0])
	if err != nil {
		return err
	}

	if err := active.Settings.SetDefaultOrder(order); err != nil {
		return fmt.Errorf("failed to set default order: %w", err)
	}

	cmd.Printf("Default order set to: %s\n", order)
	return nil
}
