package summary

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0.00"},
		{"whole", 100, "100.00"},
		{"half up", 1.005, "1.01"},
		{"half up second place", 2.675, "2.68"},
		{"float noise", 0.1 + 0.2, "0.30"},
		{"truncates long tail", 33.333333, "33.33"},
		{"negative", -1.5, "-1.50"},
		{"large", 1234567.891, "1234567.89"},
		{"positive overflow", math.Inf(1), "Infinity"},
		{"negative overflow", math.Inf(-1), "-Infinity"},
		{"not a number", math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.in))
		})
	}
}

func TestNewDisplay(t *testing.T) {
	inv := domain.NewInvoice(time.Now())
	inv.UpdateItem(0, domain.ItemDescription, "Design")
	inv.UpdateItem(0, domain.ItemQuantity, "2")
	inv.UpdateItem(0, domain.ItemRate, "50")
	inv.SetField(domain.PathVATRate, "15")

	d := NewDisplay(inv)
	assert.Equal(t, Display{
		CurrencySymbol: "$",
		Subtotal:       "100.00",
		VATRate:        "15",
		VATAmount:      "15.00",
		Total:          "115.00",
	}, d)
	assert.Equal(t, "VAT (15%):", d.VATLabel())
	assert.Equal(t, "$115.00", d.Amount(d.Total))

	t.Run("currency only changes the symbol", func(t *testing.T) {
		inv.SetField(domain.PathCurrency, "JPY")
		jp := NewDisplay(inv)
		assert.Equal(t, "¥", jp.CurrencySymbol)
		assert.Equal(t, d.Subtotal, jp.Subtotal)
		assert.Equal(t, d.Total, jp.Total)
	})

	t.Run("unknown currency falls back to dollar", func(t *testing.T) {
		inv.SetField(domain.PathCurrency, "XYZ")
		assert.Equal(t, "$", NewDisplay(inv).CurrencySymbol)
	})

	t.Run("stored values keep full precision", func(t *testing.T) {
		inv.UpdateItem(0, domain.ItemRate, "0.3333")
		inv.UpdateItem(0, domain.ItemQuantity, "3")
		assert.InDelta(t, 0.9999, Project(inv).Subtotal, 1e-12)
		assert.Equal(t, "1.00", NewDisplay(inv).Subtotal)
	})
}

func TestNewDisplayOverflow(t *testing.T) {
	t.Run("item amount", func(t *testing.T) {
		inv := domain.NewInvoice(time.Now())
		inv.UpdateItem(0, domain.ItemQuantity, "1e200")
		inv.UpdateItem(0, domain.ItemRate, "1e200")

		var d Display
		require.NotPanics(t, func() { d = NewDisplay(inv) })
		assert.Equal(t, "Infinity", d.Subtotal)
		assert.Equal(t, "Infinity", d.Total)
	})

	t.Run("subtotal", func(t *testing.T) {
		inv := domain.NewInvoice(time.Now())
		inv.UpdateItem(0, domain.ItemQuantity, "1e308")
		inv.UpdateItem(0, domain.ItemRate, "1")
		inv.AddItem()
		inv.UpdateItem(1, domain.ItemQuantity, "1e308")
		inv.UpdateItem(1, domain.ItemRate, "1")

		d := NewDisplay(inv)
		assert.Equal(t, "Infinity", d.Subtotal)
	})

	t.Run("mixed signs", func(t *testing.T) {
		inv := domain.NewInvoice(time.Now())
		inv.UpdateItem(0, domain.ItemQuantity, "1e200")
		inv.UpdateItem(0, domain.ItemRate, "1e200")
		inv.AddItem()
		inv.UpdateItem(1, domain.ItemQuantity, "-1e200")
		inv.UpdateItem(1, domain.ItemRate, "1e200")

		assert.Equal(t, "NaN", NewDisplay(inv).Total)
	})

	t.Run("vat", func(t *testing.T) {
		inv := domain.NewInvoice(time.Now())
		inv.UpdateItem(0, domain.ItemQuantity, "10")
		inv.UpdateItem(0, domain.ItemRate, "10")
		inv.SetField(domain.PathVATRate, "1e308")

		d := NewDisplay(inv)
		assert.Equal(t, "100.00", d.Subtotal)
		assert.Equal(t, "Infinity", d.VATAmount)
		assert.Equal(t, "Infinity", d.Total)
	})
}
