// Package summary projects an invoice into its displayed monetary values.
package summary

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

// Project recomputes subtotal, VAT and total for inv
func Project(inv *domain.Invoice) domain.Totals {
	return inv.Recompute()
}

// Money formats v to exactly two decimals, rounding half away from zero.
// Only the displayed text is rounded; callers keep the full-precision value.
// Totals that overflowed print as Infinity, -Infinity or NaN.
func Money(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Rate formats a VAT percentage the way the rate input shows it
func Rate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Display is the formatted summary panel
type Display struct {
	CurrencySymbol string `json:"currencySymbol"`
	Subtotal       string `json:"subtotal"`
	VATRate        string `json:"vatRate"`
	VATAmount      string `json:"vatAmount"`
	Total          string `json:"total"`
}

// NewDisplay projects inv and formats every value for display
func NewDisplay(inv *domain.Invoice) Display {
	t := Project(inv)
	return Display{
		CurrencySymbol: inv.Symbol(),
		Subtotal:       Money(t.Subtotal),
		VATRate:        Rate(inv.VATRate),
		VATAmount:      Money(t.VATAmount),
		Total:          Money(t.Total),
	}
}

// VATLabel is the caption of the VAT line, e.g. "VAT (15%):"
func (d Display) VATLabel() string {
	return "VAT (" + d.VATRate + "%):"
}

// Amount prefixes a formatted value with the currency symbol
func (d Display) Amount(formatted string) string {
	return d.CurrencySymbol + formatted
}
