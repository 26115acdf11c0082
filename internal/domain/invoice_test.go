package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestInvoice_Totals(t *testing.T) {
	inv := NewInvoice()
	id := inv.Items[0].ID
	inv = Reduce(inv, UpdateItem{ID: id, Field: ItemQuantity, Value: "3"})
	inv = Reduce(inv, UpdateItem{ID: id, Field: ItemRate, Value: "10"})
	inv = Reduce(inv, UpdateField{Field: FieldTaxRate, Value: "10"})

	if got := inv.Subtotal(); got != 30 {
		t.Fatalf("subtotal = %v, want 30", got)
	}
	if got := inv.TaxAmount(); got != 3 {
		t.Fatalf("tax amount = %v, want 3", got)
	}
	if got := inv.Total(); got != 33 {
		t.Fatalf("total = %v, want 33", got)
	}
}

func TestInvoice_SubtotalSumsAllItems(t *testing.T) {
	inv := NewInvoice()
	inv = Reduce(inv, UpdateItem{ID: inv.Items[0].ID, Field: ItemRate, Value: "10"})
	inv = Reduce(inv, AddItem{})
	second := inv.Items[1].ID
	inv = Reduce(inv, UpdateItem{ID: second, Field: ItemQuantity, Value: "4"})
	inv = Reduce(inv, UpdateItem{ID: second, Field: ItemRate, Value: "2.5"})

	var want float64
	for _, li := range inv.Items {
		want += li.Quantity * li.Rate
	}
	if got := inv.Subtotal(); got != want {
		t.Fatalf("subtotal = %v, want %v", got, want)
	}
	if got := inv.Total(); got != inv.Subtotal()+inv.TaxAmount() {
		t.Fatalf("total = %v, want subtotal+tax = %v", got, inv.Subtotal()+inv.TaxAmount())
	}
}

func TestInvoice_JSONRoundTrip(t *testing.T) {
	inv := NewInvoice()
	inv = Reduce(inv, UpdateSender{Details: "Acme Co\n1 Main St"})
	inv = Reduce(inv, UpdateClient{Details: "Globex"})
	inv = Reduce(inv, UpdateField{Field: FieldDueDate, Value: "2026-09-30"})
	inv = Reduce(inv, UpdateField{Field: FieldTaxRate, Value: "8.25"})
	inv = Reduce(inv, AddItem{})
	inv = Reduce(inv, UpdateItem{ID: inv.Items[1].ID, Field: ItemDescription, Value: "hosting"})

	data, err := json.Marshal(inv)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var restored Invoice
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(inv, restored) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", restored, inv)
	}
}

func TestInvoice_Item(t *testing.T) {
	inv := NewInvoice()

	if li := inv.Item(inv.Items[0].ID); li == nil {
		t.Fatalf("expected to find existing item")
	}
	if li := inv.Item("nope"); li != nil {
		t.Fatalf("expected nil for unknown id, got %+v", li)
	}
}

func TestNewLineItem_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		li := NewLineItem()
		if li.ID == "" {
			t.Fatalf("empty id")
		}
		if seen[li.ID] {
			t.Fatalf("duplicate id %q", li.ID)
		}
		seen[li.ID] = true
	}
}
