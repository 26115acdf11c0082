// Package export renders an invoice draft into a printable PDF document.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/andy/invoiceful/internal/domain"
	"github.com/andy/invoiceful/internal/format"
)

// placeholder stands in for blank values in the rendered document
const placeholder = "—"

// Filename returns the export file name: invoice-<number>.pdf, or
// invoice-draft.pdf when the invoice number is blank.
func Filename(inv domain.Invoice) string {
	number := inv.InvoiceNumber
	if number == "" {
		number = "draft"
	}
	return fmt.Sprintf("invoice-%s.pdf", number)
}

// Render draws the invoice as an A4 PDF and writes it to w. The document
// carries a header with invoice number and dates, the sender block, a
// "Bill To" block, the line item table in state order, a totals block, and
// an optional notes block.
func Render(inv domain.Invoice, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	money := func(n float64) string {
		return tr(format.Amount(n, inv.Currency, inv.Locale))
	}
	date := func(iso string) string {
		return tr(format.Date(iso, inv.Locale, placeholder))
	}

	const left = 15.0
	const rightX = 125.0
	const topY = 15.0

	// Title
	pdf.SetXY(left, topY)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(21, 101, 192)
	pdf.Cell(95, 10, "INVOICE")

	// Detail rows on the right
	y := topY
	detail := func(label, value string) {
		pdf.SetXY(rightX, y)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(85, 85, 85)
		pdf.Cell(22, 5, label)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(51, 51, 51)
		pdf.Cell(48, 5, value)
		y += 5
	}
	number := tr(inv.InvoiceNumber)
	if number == "" {
		number = tr(placeholder)
	}
	detail("Invoice #", number)
	detail("Date", date(inv.Date))
	if inv.DueDate != "" {
		detail("Due Date", date(inv.DueDate))
	}

	// Sender block under the title
	pdf.SetXY(left, topY+13)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	if inv.Sender.Details != "" {
		pdf.MultiCell(95, 5, tr(inv.Sender.Details), "", "L", false)
	}

	// Bill To block, below both header columns
	billY := pdf.GetY()
	if billY < y {
		billY = y
	}
	pdf.SetXY(left, billY+8)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(85, 85, 85)
	pdf.Cell(60, 6, "BILL TO")
	pdf.Ln(6)
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	if inv.Client.Details != "" {
		pdf.MultiCell(95, 5, tr(inv.Client.Details), "", "L", false)
	}

	// Items table
	const wDesc, wQty, wRate, wAmount = 90.0, 20.0, 30.0, 40.0
	pdf.Ln(8)
	pdf.SetX(left)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(85, 85, 85)
	pdf.SetDrawColor(21, 101, 192)
	pdf.SetLineWidth(0.5)
	pdf.CellFormat(wDesc, 6, "DESCRIPTION", "B", 0, "L", false, 0, "")
	pdf.CellFormat(wQty, 6, "QTY", "B", 0, "R", false, 0, "")
	pdf.CellFormat(wRate, 6, "RATE", "B", 0, "R", false, 0, "")
	pdf.CellFormat(wAmount, 6, "AMOUNT", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	pdf.SetDrawColor(224, 224, 224)
	pdf.SetLineWidth(0.2)
	for _, li := range inv.Items {
		desc := li.Description
		if desc == "" {
			desc = placeholder
		}
		pdf.SetX(left)
		pdf.CellFormat(wDesc, 7, tr(desc), "B", 0, "L", false, 0, "")
		pdf.CellFormat(wQty, 7, formatNumber(li.Quantity), "B", 0, "R", false, 0, "")
		pdf.CellFormat(wRate, 7, money(li.Rate), "B", 0, "R", false, 0, "")
		pdf.CellFormat(wAmount, 7, money(li.Amount()), "B", 1, "R", false, 0, "")
	}

	// Totals block, right aligned. The tax line only appears for a non-zero
	// rate; the total includes it either way.
	const totalsX = left + wDesc + wQty
	pdf.Ln(4)
	totalRow := func(label, value string, bold bool) {
		style := ""
		size := 10.0
		if bold {
			style = "B"
			size = 12
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.SetX(totalsX)
		pdf.CellFormat(wRate, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(wAmount, 6, value, "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal", money(inv.Subtotal()), false)
	if inv.TaxRate > 0 {
		totalRow(fmt.Sprintf("Tax (%s%%)", formatNumber(inv.TaxRate)), money(inv.TaxAmount()), false)
	}
	pdf.SetDrawColor(51, 51, 51)
	pdf.SetLineWidth(0.5)
	lineY := pdf.GetY() + 1
	pdf.Line(totalsX, lineY, totalsX+wRate+wAmount, lineY)
	pdf.SetY(lineY + 2)
	totalRow("Total", money(inv.Total()), true)

	// Notes
	if inv.Notes != "" {
		pdf.Ln(10)
		pdf.SetX(left)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(85, 85, 85)
		pdf.Cell(60, 6, "NOTES")
		pdf.Ln(6)
		pdf.SetX(left)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(51, 51, 51)
		pdf.MultiCell(wDesc+wQty+wRate+wAmount, 5, tr(inv.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

// WriteFile renders the invoice into dir and returns the written path
func WriteFile(inv domain.Invoice, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(inv))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := Render(inv, f); err != nil {
		return "", fmt.Errorf("failed to render pdf: %w", err)
	}

	return path, nil
}

// formatNumber renders a quantity or percentage without trailing zeros
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
