package tui

import (
	"testing"

	"github.com/andy/invoiceful/internal/domain"
)

func TestBuildRows(t *testing.T) {
	inv := domain.NewInvoice()
	inv = domain.Reduce(inv, domain.AddItem{})

	rows := buildRows(inv)

	want := 7 + 3*len(inv.Items)
	if len(rows) != want {
		t.Fatalf("expected %d rows, got %d", want, len(rows))
	}
	if rows[0].kind != rowSender || rows[1].kind != rowClient {
		t.Errorf("expected sender and client rows first")
	}

	// Item rows follow state order, three per item
	first := rows[7]
	if first.kind != rowItemField || first.itemID != inv.Items[0].ID || first.itemField != domain.ItemDescription {
		t.Errorf("unexpected first item row: %+v", first)
	}
	second := rows[10]
	if second.itemID != inv.Items[1].ID {
		t.Errorf("expected second item rows to reference second item")
	}
}

func TestRowRoundTrip(t *testing.T) {
	inv := domain.NewInvoice()
	inv = domain.Reduce(inv, domain.UpdateSender{Details: "Jane Doe\n1 Main St"})
	inv = domain.Reduce(inv, domain.UpdateField{Field: domain.FieldTaxRate, Value: "19"})
	inv = domain.Reduce(inv, domain.UpdateItem{ID: inv.Items[0].ID, Field: domain.ItemRate, Value: "85.5"})

	for _, row := range buildRows(inv) {
		value := rowValue(inv, row)
		next := domain.Reduce(inv, rowAction(row, value))

		// Re-committing the displayed value must not change the state
		if got := rowValue(next, row); got != value {
			t.Errorf("row %q changed on round trip: %q != %q", row.label, got, value)
		}
	}
}

func TestRowActionSanitizesNumericFields(t *testing.T) {
	inv := domain.NewInvoice()
	rows := buildRows(inv)

	var taxRow formRow
	for _, row := range rows {
		if row.kind == rowTaxRate {
			taxRow = row
		}
	}

	next := domain.Reduce(inv, rowAction(taxRow, "abc"))
	if next.TaxRate != 0 {
		t.Errorf("expected invalid tax input to sanitize to 0, got %v", next.TaxRate)
	}
}

func TestCycle(t *testing.T) {
	if got := cycle(Currencies, "$"); got != "€" {
		t.Errorf("expected € after $, got %s", got)
	}
	if got := cycle(Currencies, "AUD"); got != "$" {
		t.Errorf("expected wrap to $, got %s", got)
	}
	if got := cycle(Locales, "unknown"); got != "en-US" {
		t.Errorf("expected unknown locale to restart cycle, got %s", got)
	}
}
