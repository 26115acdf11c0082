package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the ISO calendar-date form used by Date and DueDate.
// An empty string means "unset".
const DateLayout = "2006-01-02"

// ContactInfo is a free-form multi-line text block describing one party.
// Name and address are deliberately not decomposed.
type ContactInfo struct {
	Details string `json:"details"`
}

// LineItem is one billable row. Its amount is always quantity * rate,
// derived on read and never stored.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// NewLineItem creates an empty line item with a fresh unique id
func NewLineItem() LineItem {
	return LineItem{ID: uuid.NewString(), Quantity: 1}
}

// Amount returns quantity * rate
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// Invoice is the full invoice draft: the single source of truth that the
// form edits, the store persists, and the exporter renders.
type Invoice struct {
	Sender        ContactInfo `json:"sender"`
	Client        ContactInfo `json:"client"`
	InvoiceNumber string      `json:"invoiceNumber"`
	Date          string      `json:"date"`
	DueDate       string      `json:"dueDate"`
	Currency      string      `json:"currency"`
	Locale        string      `json:"locale"`
	Items         []LineItem  `json:"items"`
	TaxRate       float64     `json:"taxRate"`
	Notes         string      `json:"notes"`
}

// NewInvoice returns a fresh default draft: number "001", today's date,
// no due date, and exactly one empty line item.
func NewInvoice() Invoice {
	return Invoice{
		InvoiceNumber: "001",
		Date:          time.Now().Format(DateLayout),
		Currency:      "$",
		Locale:        "en-US",
		Items:         []LineItem{NewLineItem()},
	}
}

// Subtotal is the sum of all line item amounts.
func (inv Invoice) Subtotal() float64 {
	var sum float64
	for _, li := range inv.Items {
		sum += li.Amount()
	}
	return sum
}

// TaxAmount applies the percentage tax rate to the subtotal.
func (inv Invoice) TaxAmount() float64 {
	return inv.Subtotal() * inv.TaxRate / 100
}

// Total returns subtotal plus tax.
func (inv Invoice) Total() float64 {
	return inv.Subtotal() + inv.TaxAmount()
}

// Item returns the line item with the given id, or nil if none matches.
func (inv Invoice) Item(id string) *LineItem {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			return &inv.Items[i]
		}
	}
	return nil
}
