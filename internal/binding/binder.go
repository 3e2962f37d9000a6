// Package binding routes form control events into an invoice model and
// describes which parts of the form need redrawing afterwards.
package binding

import (
	"strconv"
	"strings"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/summary"
)

// FieldEvent is a change on a scalar control bound to a dotted path
type FieldEvent struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// ItemEvent is a change on one cell of the line-item list
type ItemEvent struct {
	Row    int    `json:"row"`
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Row is the display projection of one line item
type Row struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// Refresh tells the form what changed after an event
type Refresh struct {
	Applied        bool            `json:"applied"`
	Summary        summary.Display `json:"summary"`
	Rows           []Row           `json:"rows,omitempty"`
	AllRows        bool            `json:"allRows"`
	CurrencySymbol string          `json:"currencySymbol,omitempty"`
	ItemCount      int             `json:"itemCount"`
	CanRemove      bool            `json:"canRemove"`
}

// Form is the full model-to-controls projection
type Form struct {
	Fields    map[string]string `json:"fields"`
	Items     []Row             `json:"items"`
	CanRemove bool              `json:"canRemove"`
	Summary   summary.Display   `json:"summary"`
}

// ApplyField routes a scalar control change to SetField
func ApplyField(inv *domain.Invoice, ev FieldEvent) Refresh {
	applied := inv.SetField(ev.Path, ev.Value)

	r := newRefresh(inv, applied)
	if applied && strings.TrimSpace(ev.Path) == domain.PathCurrency {
		r.AllRows = true
		r.CurrencySymbol = inv.Symbol()
		r.Rows = rows(inv)
	}
	return r
}

// ApplyItem routes an item cell change to UpdateItem
func ApplyItem(inv *domain.Invoice, ev ItemEvent) Refresh {
	applied := inv.UpdateItem(ev.Row, ev.Column, ev.Value)
	r := newRefresh(inv, applied)
	if applied {
		r.Rows = []Row{row(inv, ev.Row)}
	}
	return r
}

// AddItem appends a blank row
func AddItem(inv *domain.Invoice) Refresh {
	inv.AddItem()
	r := newRefresh(inv, true)
	r.Rows = []Row{row(inv, len(inv.Items)-1)}
	return r
}

// RemoveItem removes a row. Indexes shift, so every row is redrawn.
func RemoveItem(inv *domain.Invoice, index int) Refresh {
	applied := inv.RemoveItem(index)
	r := newRefresh(inv, applied)
	if applied {
		r.AllRows = true
		r.Rows = rows(inv)
	}
	return r
}

// Populate reads every bound control's value back out of the model
func Populate(inv *domain.Invoice) Form {
	fields := make(map[string]string, len(domain.Paths()))
	for _, path := range domain.Paths() {
		v, _ := inv.Field(path)
		fields[path] = v
	}
	return Form{
		Fields:    fields,
		Items:     rows(inv),
		CanRemove: len(inv.Items) > 1,
		Summary:   summary.NewDisplay(inv),
	}
}

func newRefresh(inv *domain.Invoice, applied bool) Refresh {
	return Refresh{
		Applied:   applied,
		Summary:   summary.NewDisplay(inv),
		ItemCount: len(inv.Items),
		CanRemove: len(inv.Items) > 1,
	}
}

func rows(inv *domain.Invoice) []Row {
	out := make([]Row, len(inv.Items))
	for i := range inv.Items {
		out[i] = row(inv, i)
	}
	return out
}

func row(inv *domain.Invoice, i int) Row {
	item := inv.Items[i]
	return Row{
		Index:       i,
		Description: item.Description,
		Quantity:    formatNumber(item.Quantity),
		Rate:        formatNumber(item.Rate),
		Amount:      inv.Symbol() + summary.Money(item.Amount()),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
