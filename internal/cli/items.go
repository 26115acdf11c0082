package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andy/invoiceful/internal/domain"
	"github.com/andy/invoiceful/internal/format"
)

// itemFieldNames maps CLI field names onto line item fields
var itemFieldNames = map[string]domain.ItemField{
	"description": domain.ItemDescription,
	"qty":         domain.ItemQuantity,
	"quantity":    domain.ItemQuantity,
	"rate":        domain.ItemRate,
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage line items on the current draft",
	Long:  `List, add, remove, and edit line items. Items are addressed by their position, starting at 1.`,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List line items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		inv := appInstance.LoadDraft(ctx)

		fmt.Printf("%-4s %-40s %10s %10s %12s\n", "#", "Description", "Qty", "Rate", "Amount")
		fmt.Println("--------------------------------------------------------------------------------")
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

		fmt.Printf("\nTotal: %d item(s)\n", len(inv.Items))
		return nil
	},
}

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an empty line item",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		inv := domain.Reduce(appInstance.LoadDraft(ctx), domain.AddItem{})
		if err := appInstance.SaveDraft(ctx, inv); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		fmt.Printf("✓ Added item %d\n", len(inv.Items))
		return nil
	},
}

var itemsRemoveCmd = &cobra.Command{
	Use:   "remove [position]",
	Short: "Remove a line item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		inv := appInstance.LoadDraft(ctx)
		item, err := itemAt(inv, args[0])
		if err != nil {
			return err
		}
		if len(inv.Items) == 1 {
			return fmt.Errorf("cannot remove the last line item")
		}

		next := domain.Reduce(inv, domain.RemoveItem{ID: item.ID})
		if err := appInstance.SaveDraft(ctx, next); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		fmt.Printf("✓ Removed item %s, %d remaining\n", args[0], len(next.Items))
		return nil
	},
}

var itemsSetCmd = &cobra.Command{
	Use:   "set [position] [field] [value]",
	Short: "Set a field on a line item",
	Long: `Set a field on a line item.

Fields: description, qty, rate

Examples:
  invoiceful items set 1 description "Design work"
  invoiceful items set 1 qty 12
  invoiceful items set 1 rate 85`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		field, ok := itemFieldNames[args[1]]
		if !ok {
			return fmt.Errorf("unknown item field '%s'", args[1])
		}

		inv := appInstance.LoadDraft(ctx)
		item, err := itemAt(inv, args[0])
		if err != nil {
			return err
		}

		next := domain.Reduce(inv, domain.UpdateItem{ID: item.ID, Field: field, Value: args[2]})
		if err := appInstance.SaveDraft(ctx, next); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		updated := next.Item(item.ID)
		fmt.Printf("✓ Item %s: %s x %s = %s\n",
			args[0],
			formatNumber(updated.Quantity),
			formatNumber(updated.Rate),
			format.Amount(updated.Amount(), next.Currency, next.Locale),
		)
		return nil
	},
}

// itemAt resolves a 1-based position argument to a line item
func itemAt(inv domain.Invoice, arg string) (domain.LineItem, error) {
	pos, err := strconv.Atoi(arg)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("invalid item position '%s'", arg)
	}
	if pos < 1 || pos > len(inv.Items) {
		return domain.LineItem{}, fmt.Errorf("no item at position %d (have %d)", pos, len(inv.Items))
	}
	return inv.Items[pos-1], nil
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsRemoveCmd)
	itemsCmd.AddCommand(itemsSetCmd)
}
