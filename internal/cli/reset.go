package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/invoiceful/internal/domain"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current draft and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will discard the current draft and start a fresh invoice. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		ctx := context.Background()
		inv := domain.Reduce(appInstance.LoadDraft(ctx), domain.Reset{})
		if err := appInstance.SaveDraft(ctx, inv); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		fmt.Println("Draft reset.")
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
