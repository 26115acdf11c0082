package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/invoiceful/internal/format"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current invoice draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		inv := appInstance.LoadDraft(ctx)

		number := inv.InvoiceNumber
		if number == "" {
			number = "—"
		}

		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Invoice: %s\n", number)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Date:     %s\n", format.Date(inv.Date, inv.Locale, "—"))
		fmt.Printf("Due Date: %s\n", format.Date(inv.DueDate, inv.Locale, "—"))
		fmt.Printf("Currency: %s    Locale: %s\n", inv.Currency, inv.Locale)
		fmt.Println()

		fmt.Println("From:")
		printBlock(inv.Sender.Details)
		fmt.Println("Bill To:")
		printBlock(inv.Client.Details)

		fmt.Println("Line Items:")
		fmt.Println(strings.Repeat("-", 80))
		fmt.Printf("%-4s %-40s %10s %10s %12s\n", "#", "Description", "Qty", "Rate", "Amount")
		fmt.Println(strings.Repeat("-", 80))
		for i, item := range inv.Items {
			desc := item.Description
			if desc == "" {
				desc = "—"
			}
			fmt.Printf("%-4d %-40s %10s %10s %12s\n",
				i+1,
				truncate(desc, 40),
				formatNumber(item.Quantity),
				formatNumber(item.Rate),
				format.Amount(item.Amount(), inv.Currency, inv.Locale),
			)
		}
		fmt.Println(strings.Repeat("-", 80))

		fmt.Printf("\n")
		fmt.Printf("Subtotal: %s\n", format.Amount(inv.Subtotal(), inv.Currency, inv.Locale))
		if inv.TaxRate > 0 {
			fmt.Printf("Tax (%s%%): %s\n", formatNumber(inv.TaxRate), format.Amount(inv.TaxAmount(), inv.Currency, inv.Locale))
		}
		fmt.Printf("Total: %s\n", format.Amount(inv.Total(), inv.Currency, inv.Locale))

		if inv.Notes != "" {
			fmt.Println()
			fmt.Println("Notes:")
			printBlock(inv.Notes)
		}
		fmt.Println(strings.Repeat("=", 80))

		return nil
	},
}

// printBlock indents a multiline value, with a dash for an empty one
func printBlock(s string) {
	if s == "" {
		fmt.Println("  —")
		fmt.Println()
		return
	}
	for _, line := range strings.Split(s, "\n") {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
