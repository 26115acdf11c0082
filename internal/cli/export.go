package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andy/invoiceful/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current draft as a PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dir, _ := cmd.Flags().GetString("output")
		if dir == "" {
			dir = appInstance.Config.Export.OutputDir
		}

		inv := appInstance.LoadDraft(ctx)
		path, err := export.WriteFile(inv, dir)
		if err != nil {
			return fmt.Errorf("failed to export invoice: %w", err)
		}

		fmt.Printf("✓ Exported %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("output", "", "Output directory (defaults to the configured export directory)")
}
