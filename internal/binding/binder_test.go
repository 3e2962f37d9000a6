package binding

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

func newInvoice() *domain.Invoice {
	return domain.NewInvoice(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
}

func TestApplyField(t *testing.T) {
	t.Run("scalar field", func(t *testing.T) {
		inv := newInvoice()
		r := ApplyField(inv, FieldEvent{Path: "clientInfo.name", Value: "Bob"})

		assert.True(t, r.Applied)
		assert.False(t, r.AllRows)
		assert.Empty(t, r.Rows)
		assert.Equal(t, "Bob", inv.ClientInfo.Name)
	})

	t.Run("unannotated control is inert", func(t *testing.T) {
		inv := newInvoice()
		before := inv.Clone()
		r := ApplyField(inv, FieldEvent{Path: "", Value: "x"})

		assert.False(t, r.Applied)
		assert.Equal(t, before, inv)
	})

	t.Run("currency change redraws every row", func(t *testing.T) {
		inv := newInvoice()
		ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemRate, Value: "50"})
		AddItem(inv)

		r := ApplyField(inv, FieldEvent{Path: domain.PathCurrency, Value: "EUR"})
		assert.True(t, r.AllRows)
		assert.Equal(t, "€", r.CurrencySymbol)
		assert.Equal(t, "€", r.Summary.CurrencySymbol)
		require.Len(t, r.Rows, 2)
		assert.Equal(t, "€50.00", r.Rows[0].Amount)
		assert.Equal(t, "€0.00", r.Rows[1].Amount)
		assert.Equal(t, 50.0, inv.Items[0].Rate)
	})

	t.Run("vat edit refreshes summary", func(t *testing.T) {
		inv := newInvoice()
		ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemQuantity, Value: "2"})
		ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemRate, Value: "50"})

		r := ApplyField(inv, FieldEvent{Path: domain.PathVATRate, Value: "15"})
		assert.Equal(t, "15.00", r.Summary.VATAmount)
		assert.Equal(t, "115.00", r.Summary.Total)
	})
}

func TestApplyItem(t *testing.T) {
	inv := newInvoice()

	r := ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemQuantity, Value: "abc"})
	assert.True(t, r.Applied)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, "$0.00", r.Rows[0].Amount)
	assert.Equal(t, "0", r.Rows[0].Quantity)

	r = ApplyItem(inv, ItemEvent{Row: 4, Column: domain.ItemRate, Value: "1"})
	assert.False(t, r.Applied)
	assert.Empty(t, r.Rows)

	t.Run("overflowing amount", func(t *testing.T) {
		inv := newInvoice()
		ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemQuantity, Value: "1e200"})

		var r Refresh
		require.NotPanics(t, func() {
			r = ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemRate, Value: "1e200"})
		})
		assert.True(t, r.Applied)
		require.Len(t, r.Rows, 1)
		assert.Equal(t, "$Infinity", r.Rows[0].Amount)
		assert.Equal(t, "Infinity", r.Summary.Total)

		_, err := json.Marshal(Populate(inv))
		assert.NoError(t, err)
	})
}

func TestAddRemove(t *testing.T) {
	inv := newInvoice()

	r := AddItem(inv)
	assert.Equal(t, 2, r.ItemCount)
	assert.True(t, r.CanRemove)
	require.Len(t, r.Rows, 1)
	assert.Equal(t, 1, r.Rows[0].Index)
	assert.Equal(t, "1", r.Rows[0].Quantity)

	r = RemoveItem(inv, 0)
	assert.True(t, r.Applied)
	assert.Equal(t, 1, r.ItemCount)
	assert.False(t, r.CanRemove)

	r = RemoveItem(inv, 0)
	assert.Equal(t, 1, r.ItemCount)
	assert.Len(t, inv.Items, 1)
}

func TestPopulate(t *testing.T) {
	inv := newInvoice()
	ApplyField(inv, FieldEvent{Path: domain.PathCompanyName, Value: "Acme"})
	ApplyField(inv, FieldEvent{Path: domain.PathNumber, Value: "INV-9"})
	ApplyField(inv, FieldEvent{Path: domain.PathVATRate, Value: "12.5"})
	ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemDescription, Value: "Hosting"})
	ApplyItem(inv, ItemEvent{Row: 0, Column: domain.ItemRate, Value: "9.99"})

	form := Populate(inv)
	assert.Equal(t, "Acme", form.Fields[domain.PathCompanyName])
	assert.Equal(t, "INV-9", form.Fields[domain.PathNumber])
	assert.Equal(t, "12.5", form.Fields[domain.PathVATRate])
	assert.Equal(t, "2024-01-15", form.Fields[domain.PathDate])
	assert.Len(t, form.Fields, len(domain.Paths()))
	require.Len(t, form.Items, 1)
	assert.Equal(t, "Hosting", form.Items[0].Description)
	assert.Equal(t, "$9.99", form.Items[0].Amount)

	t.Run("populate after decode matches the source", func(t *testing.T) {
		data, err := json.Marshal(inv)
		require.NoError(t, err)
		loaded, err := domain.DecodeInvoice(data, time.Now())
		require.NoError(t, err)

		assert.Equal(t, form, Populate(loaded))
	})
}
