package domain

import (
	"math"
	"strconv"
	"strings"
)

// Reduce applies a single action to an invoice and returns the next state.
// It is pure and total: the input value is never mutated, slices reachable
// from it are copied before modification (prior snapshots stay valid), and
// an unrecognized action returns the state unchanged.
func Reduce(state Invoice, action Action) Invoice {
	switch a := action.(type) {
	case UpdateSender:
		state.Sender.Details = a.Details
		return state

	case UpdateClient:
		state.Client.Details = a.Details
		return state

	case UpdateField:
		switch a.Field {
		case FieldInvoiceNumber:
			state.InvoiceNumber = a.Value
		case FieldDate:
			state.Date = a.Value
		case FieldDueDate:
			state.DueDate = a.Value
		case FieldCurrency:
			state.Currency = a.Value
		case FieldLocale:
			state.Locale = a.Value
		case FieldTaxRate:
			state.TaxRate = SafeNum(a.Value)
		case FieldNotes:
			state.Notes = a.Value
		}
		return state

	case AddItem:
		items := make([]LineItem, len(state.Items), len(state.Items)+1)
		copy(items, state.Items)
		state.Items = append(items, NewLineItem())
		return state

	case RemoveItem:
		idx := indexOf(state.Items, a.ID)
		if idx < 0 || len(state.Items) == 1 {
			// Unknown id, or the draft would be left without any rows.
			return state
		}
		items := make([]LineItem, 0, len(state.Items)-1)
		items = append(items, state.Items[:idx]...)
		items = append(items, state.Items[idx+1:]...)
		state.Items = items
		return state

	case UpdateItem:
		idx := indexOf(state.Items, a.ID)
		if idx < 0 {
			return state
		}
		items := make([]LineItem, len(state.Items))
		copy(items, state.Items)
		switch a.Field {
		case ItemDescription:
			items[idx].Description = a.Value
		case ItemQuantity:
			items[idx].Quantity = SafeNum(a.Value)
		case ItemRate:
			items[idx].Rate = SafeNum(a.Value)
		default:
			return state
		}
		state.Items = items
		return state

	case Reset:
		return NewInvoice()
	}

	return state
}

func indexOf(items []LineItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// SafeNum coerces user input to a finite number >= 0. Strings that fail to
// parse, NaN, infinities, and negative values all become 0. This is the only
// input validation the model performs.
func SafeNum(value any) float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
