package tui

import (
	"fmt"
	"strconv"

	"github.com/andy/invoiceful/internal/domain"
)

// Currencies is the fixed symbol list offered by the form. It is a UI
// affordance only; the model accepts any string.
var Currencies = []string{"$", "€", "£", "¥", "₽", "₾", "CHF", "CAD", "AUD"}

// Locales is the fixed locale tag list offered by the form.
var Locales = []string{"en-US", "en-GB", "de-DE", "fr-FR", "ru-RU", "ka-GE", "ja-JP", "zh-CN"}

type rowKind int

const (
	rowSender rowKind = iota
	rowClient
	rowNumber
	rowDate
	rowDueDate
	rowTaxRate
	rowNotes
	rowItemField
)

// formRow is one focusable line of the form
type formRow struct {
	kind      rowKind
	label     string
	itemID    string
	itemField domain.ItemField
	itemIndex int
}

// multiline rows edit in a textarea instead of a single-line input
func (r formRow) multiline() bool {
	return r.kind == rowSender || r.kind == rowClient || r.kind == rowNotes
}

// buildRows lays out the form for the current state: the scalar fields
// first, then three rows per line item in state order.
func buildRows(inv domain.Invoice) []formRow {
	rows := []formRow{
		{kind: rowSender, label: "From"},
		{kind: rowClient, label: "Bill To"},
		{kind: rowNumber, label: "Invoice #"},
		{kind: rowDate, label: "Date (YYYY-MM-DD)"},
		{kind: rowDueDate, label: "Due Date"},
		{kind: rowTaxRate, label: "Tax Rate (%)"},
		{kind: rowNotes, label: "Notes"},
	}
	for i, li := range inv.Items {
		rows = append(rows,
			formRow{kind: rowItemField, label: fmt.Sprintf("Item %d Description", i+1), itemID: li.ID, itemField: domain.ItemDescription, itemIndex: i},
			formRow{kind: rowItemField, label: fmt.Sprintf("Item %d Qty", i+1), itemID: li.ID, itemField: domain.ItemQuantity, itemIndex: i},
			formRow{kind: rowItemField, label: fmt.Sprintf("Item %d Rate", i+1), itemID: li.ID, itemField: domain.ItemRate, itemIndex: i},
		)
	}
	return rows
}

// rowValue returns the state value behind a row, as editable text
func rowValue(inv domain.Invoice, row formRow) string {
	switch row.kind {
	case rowSender:
		return inv.Sender.Details
	case rowClient:
		return inv.Client.Details
	case rowNumber:
		return inv.InvoiceNumber
	case rowDate:
		return inv.Date
	case rowDueDate:
		return inv.DueDate
	case rowTaxRate:
		return formatNumber(inv.TaxRate)
	case rowNotes:
		return inv.Notes
	case rowItemField:
		li := inv.Item(row.itemID)
		if li == nil {
			return ""
		}
		switch row.itemField {
		case domain.ItemDescription:
			return li.Description
		case domain.ItemQuantity:
			return formatNumber(li.Quantity)
		case domain.ItemRate:
			return formatNumber(li.Rate)
		}
	}
	return ""
}

// rowAction maps a committed edit back onto a single reducer action
func rowAction(row formRow, value string) domain.Action {
	switch row.kind {
	case rowSender:
		return domain.UpdateSender{Details: value}
	case rowClient:
		return domain.UpdateClient{Details: value}
	case rowNumber:
		return domain.UpdateField{Field: domain.FieldInvoiceNumber, Value: value}
	case rowDate:
		return domain.UpdateField{Field: domain.FieldDate, Value: value}
	case rowDueDate:
		return domain.UpdateField{Field: domain.FieldDueDate, Value: value}
	case rowTaxRate:
		return domain.UpdateField{Field: domain.FieldTaxRate, Value: value}
	case rowNotes:
		return domain.UpdateField{Field: domain.FieldNotes, Value: value}
	case rowItemField:
		return domain.UpdateItem{ID: row.itemID, Field: row.itemField, Value: value}
	}
	return nil
}

// cycle returns the entry after current in options, wrapping around.
// An unlisted current value starts the cycle at the first option.
func cycle(options []string, current string) string {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// formatNumber renders a numeric field without trailing zeros
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
