package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andy/invoiceful/internal/domain"
)

// fieldNames maps CLI field names onto invoice fields
var fieldNames = map[string]domain.Field{
	"number":   domain.FieldInvoiceNumber,
	"date":     domain.FieldDate,
	"due-date": domain.FieldDueDate,
	"currency": domain.FieldCurrency,
	"locale":   domain.FieldLocale,
	"tax-rate": domain.FieldTaxRate,
	"notes":    domain.FieldNotes,
}

var setCmd = &cobra.Command{
	Use:   "set [field] [value]",
	Short: "Set a field on the current draft",
	Long: `Set a field on the current draft.

Fields: sender, client, number, date, due-date, currency, locale, tax-rate, notes

Examples:
  invoiceful set number 042
  invoiceful set tax-rate 19
  invoiceful set sender "Jane Doe, 1 Main St"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		name, value := args[0], args[1]

		var action domain.Action
		switch name {
		case "sender":
			action = domain.UpdateSender{Details: value}
		case "client":
			action = domain.UpdateClient{Details: value}
		default:
			field, ok := fieldNames[name]
			if !ok {
				return fmt.Errorf("unknown field '%s'", name)
			}
			action = domain.UpdateField{Field: field, Value: value}
		}

		inv := domain.Reduce(appInstance.LoadDraft(ctx), action)
		if err := appInstance.SaveDraft(ctx, inv); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		if name == "tax-rate" {
			// Echo the sanitized value, which may differ from the input
			fmt.Printf("✓ Set tax-rate to %s\n", formatNumber(inv.TaxRate))
			return nil
		}
		fmt.Printf("✓ Set %s\n", name)
		return nil
	},
}

// formatNumber renders a numeric field without trailing zeros
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
