package format

import "testing"

func TestAmount(t *testing.T) {
	cases := []struct {
		n        float64
		currency string
		locale   string
		want     string
	}{
		{1234.5, "$", "en-US", "$1,234.50"},
		{1234.5, "€", "de-DE", "€1.234,50"},
		{0, "£", "en-GB", "£0.00"},
		{33, "$", "en-US", "$33.00"},
		{1234567.891, "¥", "ja-JP", "¥1,234,567.89"},
	}
	for _, c := range cases {
		if got := Amount(c.n, c.currency, c.locale); got != c.want {
			t.Fatalf("Amount(%v, %q, %q) = %q, want %q", c.n, c.currency, c.locale, got, c.want)
		}
	}
}

func TestAmount_UnknownLocale(t *testing.T) {
	// A garbage tag still formats; it just uses root conventions.
	if got := Amount(5, "$", "not-a-locale"); got == "" {
		t.Fatalf("expected non-empty output for unknown locale")
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		iso    string
		locale string
		want   string
	}{
		// March 5, 2024 in US order, not shifted by a day
		{"2024-03-05", "en-US", "3/5/2024"},
		{"2024-03-05", "en-GB", "05/03/2024"},
		{"2024-03-05", "de-DE", "5.3.2024"},
		{"2024-03-05", "ru-RU", "05.03.2024"},
		{"2024-03-05", "ja-JP", "2024/3/5"},
		// Unknown locale keeps the ISO form
		{"2024-03-05", "xx-XX", "2024-03-05"},
	}
	for _, c := range cases {
		if got := Date(c.iso, c.locale, ""); got != c.want {
			t.Fatalf("Date(%q, %q) = %q, want %q", c.iso, c.locale, got, c.want)
		}
	}
}

func TestDate_Fallback(t *testing.T) {
	if got := Date("", "en-US", "—"); got != "—" {
		t.Fatalf("expected fallback for empty date, got %q", got)
	}
	if got := Date("03/05/2024", "en-US", "—"); got != "—" {
		t.Fatalf("expected fallback for malformed date, got %q", got)
	}
	if got := Date("", "en-US", ""); got != "" {
		t.Fatalf("expected empty default fallback, got %q", got)
	}
}
