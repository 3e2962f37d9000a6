package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

func TestNewInvoiceDefaults(t *testing.T) {
	inv := NewInvoice(fixedNow)

	assert.Equal(t, "USD", inv.Currency)
	assert.Equal(t, DefaultTheme, inv.Theme)
	assert.Equal(t, "2024-03-05", inv.InvoiceDetails.Date)
	assert.Empty(t, inv.InvoiceDetails.DueDate)
	assert.Equal(t, []LineItem{{Description: "", Quantity: 1, Rate: 0}}, inv.Items)
	assert.Equal(t, DefaultNotes, inv.Notes)
	assert.Equal(t, DefaultTerms, inv.Terms)
	assert.Zero(t, inv.VATRate)
	assert.Equal(t, "$", inv.Symbol())
}

func TestSetField(t *testing.T) {
	t.Run("nested path", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		assert.True(t, inv.SetField("companyInfo.name", "Acme"))
		assert.Equal(t, "Acme", inv.CompanyInfo.Name)

		got, ok := inv.Field("companyInfo.name")
		assert.True(t, ok)
		assert.Equal(t, "Acme", got)
	})

	t.Run("empty and unknown paths are no-ops", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		before := inv.Clone()

		for _, path := range []string{"", "  ", "companyInfo", "companyInfo.fax", "items.0.rate"} {
			assert.False(t, inv.SetField(path, "x"), path)
		}
		assert.Equal(t, before, inv)
	})

	t.Run("vat rate coerces and clamps", func(t *testing.T) {
		inv := NewInvoice(fixedNow)

		inv.SetField(PathVATRate, "15")
		assert.Equal(t, 15.0, inv.VATRate)

		inv.SetField(PathVATRate, "abc")
		assert.Zero(t, inv.VATRate)

		inv.SetField(PathVATRate, "-4")
		assert.Zero(t, inv.VATRate)

		inv.SetField(PathVATRate, "7.5")
		got, _ := inv.Field(PathVATRate)
		assert.Equal(t, "7.5", got)
	})

	t.Run("every listed path round-trips", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		for _, path := range Paths() {
			if path == PathVATRate {
				continue
			}
			require.True(t, inv.SetField(path, "v:"+path))
			got, ok := inv.Field(path)
			require.True(t, ok)
			assert.Equal(t, "v:"+path, got)
		}
	})
}

func TestItems(t *testing.T) {
	t.Run("remove last item re-seeds a blank row", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.UpdateItem(0, ItemDescription, "Design")
		inv.UpdateItem(0, ItemQuantity, "3")

		assert.True(t, inv.RemoveItem(0))
		require.Len(t, inv.Items, 1)
		assert.Equal(t, BlankItem(), inv.Items[0])
	})

	t.Run("remove keeps order", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.AddItem()
		inv.AddItem()
		inv.UpdateItem(0, ItemDescription, "a")
		inv.UpdateItem(1, ItemDescription, "b")
		inv.UpdateItem(2, ItemDescription, "c")

		inv.RemoveItem(1)
		require.Len(t, inv.Items, 2)
		assert.Equal(t, "a", inv.Items[0].Description)
		assert.Equal(t, "c", inv.Items[1].Description)
	})

	t.Run("out of range is ignored", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		assert.False(t, inv.RemoveItem(3))
		assert.False(t, inv.RemoveItem(-1))
		assert.False(t, inv.UpdateItem(2, ItemRate, "4"))
		assert.False(t, inv.UpdateItem(0, "amount", "4"))
		assert.Len(t, inv.Items, 1)
	})

	t.Run("bad numeric input becomes zero", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.UpdateItem(0, ItemRate, "50")
		inv.UpdateItem(0, ItemQuantity, "abc")

		assert.Zero(t, inv.Items[0].Quantity)
		assert.Zero(t, inv.Items[0].Amount())
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"12", 12},
		{" 3.5 ", 3.5},
		{"12abc", 12},
		{".5", 0.5},
		{"-2", -2},
		{"1e3", 1000},
		{"1e999", 0},
		{"NaN", 0},
		{"Infinity", 0},
		{"-0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.raw))
		})
	}
}

func TestRecompute(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.UpdateItem(0, ItemDescription, "Design")
		inv.UpdateItem(0, ItemQuantity, "2")
		inv.UpdateItem(0, ItemRate, "50")
		inv.SetField(PathVATRate, "15")

		totals := inv.Recompute()
		assert.InDelta(t, 100.0, totals.Subtotal, 1e-9)
		assert.InDelta(t, 15.0, totals.VATAmount, 1e-9)
		assert.InDelta(t, 115.0, totals.Total, 1e-9)
	})

	t.Run("subtotal tracks every update", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.AddItem()
		inv.AddItem()
		edits := []struct {
			row   int
			field string
			value string
		}{
			{0, ItemQuantity, "3"},
			{0, ItemRate, "19.99"},
			{1, ItemRate, "0.1"},
			{2, ItemQuantity, "0.25"},
			{2, ItemRate, "400"},
			{1, ItemQuantity, "x"},
			{0, ItemQuantity, "7"},
		}
		for _, e := range edits {
			inv.UpdateItem(e.row, e.field, e.value)

			var want float64
			for _, item := range inv.Items {
				want += item.Quantity * item.Rate
			}
			totals := inv.Recompute()
			assert.InDelta(t, want, totals.Subtotal, 1e-9)
		}
	})

	t.Run("vat relations hold for non-negative rates", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.UpdateItem(0, ItemQuantity, "3")
		inv.UpdateItem(0, ItemRate, "33.33")
		for _, rate := range []string{"0", "5", "12.5", "20", "100"} {
			inv.SetField(PathVATRate, rate)
			totals := inv.Recompute()
			assert.InDelta(t, totals.Subtotal*inv.VATRate/100, totals.VATAmount, 1e-9)
			assert.InDelta(t, totals.Subtotal+totals.VATAmount, totals.Total, 1e-9)
		}
	})

	t.Run("currency change leaves numbers alone", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.UpdateItem(0, ItemQuantity, "2")
		inv.UpdateItem(0, ItemRate, "50")
		before := inv.Recompute()

		inv.SetField(PathCurrency, "EUR")
		assert.Equal(t, "€", inv.Symbol())
		assert.Equal(t, before, inv.Recompute())
		assert.Equal(t, 2.0, inv.Items[0].Quantity)
		assert.Equal(t, 50.0, inv.Items[0].Rate)
	})
}

func TestDecodeInvoice(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		inv := NewInvoice(fixedNow)
		inv.SetField(PathCompanyName, "Acme <Ltd>")
		inv.SetField(PathNumber, "INV-7")
		inv.SetField(PathCurrency, "ZAR")
		inv.SetField(PathVATRate, "15")
		inv.SetField(PathBankName, "First Bank")
		inv.UpdateItem(0, ItemDescription, "Design")
		inv.UpdateItem(0, ItemRate, "0.1")
		inv.AddItem()

		data, err := json.Marshal(inv)
		require.NoError(t, err)

		got, err := DecodeInvoice(data, fixedNow.AddDate(0, 1, 0))
		require.NoError(t, err)
		assert.Equal(t, inv, got)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		got, err := DecodeInvoice([]byte(`{"clientInfo":{"name":"Bob"},"currency":"GBP"}`), fixedNow)
		require.NoError(t, err)

		assert.Equal(t, "Bob", got.ClientInfo.Name)
		assert.Equal(t, "GBP", got.Currency)
		assert.Equal(t, DefaultTheme, got.Theme)
		assert.Equal(t, "2024-03-05", got.InvoiceDetails.Date)
		assert.Equal(t, DefaultNotes, got.Notes)
		assert.Len(t, got.Items, 1)
	})

	t.Run("empty items are re-seeded", func(t *testing.T) {
		got, err := DecodeInvoice([]byte(`{"items":[]}`), fixedNow)
		require.NoError(t, err)
		assert.Equal(t, []LineItem{BlankItem()}, got.Items)
	})

	t.Run("lenient numbers", func(t *testing.T) {
		data := []byte(`{"vatRate":"15","items":[{"description":"a","quantity":"2","rate":true},{"description":"b","quantity":null,"rate":"x"}]}`)
		got, err := DecodeInvoice(data, fixedNow)
		require.NoError(t, err)

		assert.Equal(t, 15.0, got.VATRate)
		assert.Equal(t, LineItem{Description: "a", Quantity: 2, Rate: 0}, got.Items[0])
		assert.Equal(t, LineItem{Description: "b", Quantity: 0, Rate: 0}, got.Items[1])
	})

	t.Run("negative stored vat rate is clamped", func(t *testing.T) {
		got, err := DecodeInvoice([]byte(`{"vatRate":-3}`), fixedNow)
		require.NoError(t, err)
		assert.Zero(t, got.VATRate)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := DecodeInvoice([]byte(`{"items":`), fixedNow)
		assert.Error(t, err)
	})
}

func TestClone(t *testing.T) {
	inv := NewInvoice(fixedNow)
	cp := inv.Clone()
	cp.UpdateItem(0, ItemDescription, "changed")
	cp.SetField(PathNotes, "")

	assert.Empty(t, inv.Items[0].Description)
	assert.Equal(t, DefaultNotes, inv.Notes)
}

func TestSummarize(t *testing.T) {
	inv := NewInvoice(fixedNow)
	inv.SetField(PathNumber, "INV-1")
	inv.SetField(PathClientName, "Bob")
	inv.SetField(PathCurrency, "EUR")
	inv.SetField(PathVATRate, "10")
	inv.UpdateItem(0, ItemRate, "200")

	s := SavedInvoice{ID: "id-1", OwnerID: "u1", CreatedAt: fixedNow, Invoice: inv}.Summarize()
	assert.Equal(t, "INV-1", s.Number)
	assert.Equal(t, "Bob", s.ClientName)
	assert.Equal(t, "€", s.CurrencySymbol)
	assert.InDelta(t, 220.0, s.Total, 1e-9)
}
