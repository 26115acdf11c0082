package cli

import (
	"github.com/spf13/cobra"

	"github.com/andy/invoiceful/internal/app"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "invoiceful",
	Short: "A CLI invoice builder for freelancers",
	Long: `Invoiceful builds invoices from the terminal and exports them as PDFs.

By default, running invoiceful without arguments launches the interactive TUI.
Use subcommands for CLI operations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
