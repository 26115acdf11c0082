package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestReduce_UpdateSenderAndClient(t *testing.T) {
	state := NewInvoice()

	next := Reduce(state, UpdateSender{Details: "Acme Co\n1 Main St"})
	if next.Sender.Details != "Acme Co\n1 Main St" {
		t.Fatalf("sender not updated: %q", next.Sender.Details)
	}
	if state.Sender.Details != "" {
		t.Fatalf("previous state mutated")
	}

	next = Reduce(next, UpdateClient{Details: "Globex"})
	if next.Client.Details != "Globex" {
		t.Fatalf("client not updated: %q", next.Client.Details)
	}
	if next.Sender.Details != "Acme Co\n1 Main St" {
		t.Fatalf("sender clobbered by client update")
	}
}

func TestReduce_UpdateField(t *testing.T) {
	state := NewInvoice()

	next := Reduce(state, UpdateField{Field: FieldInvoiceNumber, Value: "042"})
	if next.InvoiceNumber != "042" {
		t.Fatalf("expected invoice number 042, got %q", next.InvoiceNumber)
	}

	next = Reduce(next, UpdateField{Field: FieldTaxRate, Value: "8.5"})
	if next.TaxRate != 8.5 {
		t.Fatalf("expected tax rate 8.5, got %v", next.TaxRate)
	}

	// Tax rate input goes through the sanitizer
	next = Reduce(next, UpdateField{Field: FieldTaxRate, Value: "abc"})
	if next.TaxRate != 0 {
		t.Fatalf("expected sanitized tax rate 0, got %v", next.TaxRate)
	}

	// An unknown field name is an identity transition
	before := next
	next = Reduce(next, UpdateField{Field: Field("purchaseOrder"), Value: "PO-1"})
	if !reflect.DeepEqual(before, next) {
		t.Fatalf("unknown field changed state")
	}
}

func TestReduce_AddItem(t *testing.T) {
	state := NewInvoice()

	next := Reduce(state, AddItem{})
	if len(next.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(next.Items))
	}
	if len(state.Items) != 1 {
		t.Fatalf("previous state mutated by add")
	}
	if next.Items[0].ID != state.Items[0].ID {
		t.Fatalf("existing item order changed")
	}

	added := next.Items[1]
	if added.ID == "" || added.ID == next.Items[0].ID {
		t.Fatalf("new item id not unique: %q", added.ID)
	}
	if added.Description != "" || added.Quantity != 1 || added.Rate != 0 {
		t.Fatalf("unexpected new item defaults: %+v", added)
	}
}

func TestReduce_AddThenRemoveRestoresItems(t *testing.T) {
	state := NewInvoice()
	state = Reduce(state, UpdateItem{ID: state.Items[0].ID, Field: ItemDescription, Value: "design work"})

	next := Reduce(state, AddItem{})
	newID := next.Items[len(next.Items)-1].ID

	restored := Reduce(next, RemoveItem{ID: newID})
	if !reflect.DeepEqual(restored.Items, state.Items) {
		t.Fatalf("items not restored:\n got %+v\nwant %+v", restored.Items, state.Items)
	}
}

func TestReduce_RemoveItem_UnknownID(t *testing.T) {
	state := Reduce(NewInvoice(), AddItem{})

	next := Reduce(state, RemoveItem{ID: "no-such-id"})
	if !reflect.DeepEqual(state, next) {
		t.Fatalf("removing an unknown id changed state")
	}
}

func TestReduce_RemoveItem_KeepsLastItem(t *testing.T) {
	state := NewInvoice()

	next := Reduce(state, RemoveItem{ID: state.Items[0].ID})
	if !reflect.DeepEqual(state, next) {
		t.Fatalf("removing the last remaining item should be a no-op")
	}
}

func TestReduce_UpdateItem(t *testing.T) {
	state := NewInvoice()
	id := state.Items[0].ID

	next := Reduce(state, UpdateItem{ID: id, Field: ItemRate, Value: "150"})
	if next.Items[0].Rate != 150 {
		t.Fatalf("expected rate 150, got %v", next.Items[0].Rate)
	}
	if state.Items[0].Rate != 0 {
		t.Fatalf("previous snapshot mutated by item update")
	}

	// Garbage numeric input becomes 0, other fields untouched
	next = Reduce(next, UpdateItem{ID: id, Field: ItemQuantity, Value: "2"})
	next = Reduce(next, UpdateItem{ID: id, Field: ItemRate, Value: "abc"})
	if next.Items[0].Rate != 0 {
		t.Fatalf("expected sanitized rate 0, got %v", next.Items[0].Rate)
	}
	if next.Items[0].Quantity != 2 {
		t.Fatalf("quantity changed by rate update: %v", next.Items[0].Quantity)
	}
	if next.Items[0].ID != id {
		t.Fatalf("item id changed by update")
	}

	// Unknown item id leaves the state alone
	before := next
	next = Reduce(next, UpdateItem{ID: "missing", Field: ItemRate, Value: "99"})
	if !reflect.DeepEqual(before, next) {
		t.Fatalf("updating a missing item changed state")
	}
}

func TestReduce_Reset(t *testing.T) {
	state := NewInvoice()
	state = Reduce(state, UpdateField{Field: FieldTaxRate, Value: "20"})
	state = Reduce(state, UpdateField{Field: FieldNotes, Value: "net 30"})
	state = Reduce(state, AddItem{})
	oldID := state.Items[0].ID

	fresh := Reduce(state, Reset{})
	if len(fresh.Items) != 1 {
		t.Fatalf("expected exactly one item after reset, got %d", len(fresh.Items))
	}
	if fresh.TaxRate != 0 || fresh.Notes != "" {
		t.Fatalf("reset kept old values: tax %v notes %q", fresh.TaxRate, fresh.Notes)
	}
	if fresh.Date != time.Now().Format(DateLayout) {
		t.Fatalf("expected today's date, got %q", fresh.Date)
	}
	if fresh.InvoiceNumber != "001" || fresh.Currency != "$" || fresh.Locale != "en-US" {
		t.Fatalf("unexpected reset defaults: %+v", fresh)
	}
	if fresh.Items[0].ID == oldID {
		t.Fatalf("reset reused an old item id")
	}
}

func TestReduce_UnknownAction(t *testing.T) {
	state := NewInvoice()

	next := Reduce(state, nil)
	if !reflect.DeepEqual(state, next) {
		t.Fatalf("nil action changed state")
	}
}

func TestSafeNum(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"abc", 0},
		{-5, 0},
		{"12.5", 12.5},
		{"", 0},
		{"  3 ", 3},
		{"-2.5", 0},
		{"1e3", 1000},
		{"Inf", 0},
		{float64(7), 7},
		{nil, 0},
		{true, 0},
	}
	for _, c := range cases {
		if got := SafeNum(c.in); got != c.want {
			t.Fatalf("SafeNum(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSafeNum_Idempotent(t *testing.T) {
	inputs := []any{"abc", "12.5", -5, "1e3", "", 42}
	for _, in := range inputs {
		once := SafeNum(in)
		if twice := SafeNum(once); twice != once {
			t.Fatalf("SafeNum not idempotent for %v: %v != %v", in, twice, once)
		}
		if once < 0 {
			t.Fatalf("SafeNum(%v) negative: %v", in, once)
		}
	}
}
