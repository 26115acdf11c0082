// Package format renders invoice amounts and dates for display, using the
// grouping and decimal conventions of the invoice's locale.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/andy/invoiceful/internal/domain"
)

// dateLayouts maps the supported locale tags to their conventional short
// date layouts. Anything else falls back to the ISO form.
var dateLayouts = map[string]string{
	"en-US": "1/2/2006",
	"en-GB": "02/01/2006",
	"de-DE": "2.1.2006",
	"fr-FR": "02/01/2006",
	"ru-RU": "02.01.2006",
	"ka-GE": "02.01.2006",
	"ja-JP": "2006/1/2",
	"zh-CN": "2006/1/2",
}

// Amount renders a number as <symbol><locale-formatted value> with exactly
// two fraction digits. The currency symbol is a literal prefix; this is not
// a currency-aware formatter and does not reposition the symbol per locale.
func Amount(n float64, currency, locale string) string {
	p := message.NewPrinter(language.Make(locale))
	return currency + p.Sprintf("%v", number.Decimal(n, number.Scale(2)))
}

// Date renders an ISO YYYY-MM-DD string in the locale's conventional date
// order. The input is treated as plain calendar components, so the result is
// never shifted by a time zone. Empty or malformed input yields fallback.
func Date(iso, locale, fallback string) string {
	if iso == "" {
		return fallback
	}
	t, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return fallback
	}
	layout, ok := dateLayouts[locale]
	if !ok {
		layout = domain.DateLayout
	}
	return t.Format(layout)
}
