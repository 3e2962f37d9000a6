package model

import (
	"math"
	"time"

	"github.com/ridwanfathin/invoice-builder-service/internal/binding"
	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/summary"
)

// SetFieldRequest changes one scalar control
type SetFieldRequest struct {
	Path  string `json:"path" binding:"required"`
	Value string `json:"value"`
}

// UpdateItemRequest changes one cell of the item table
type UpdateItemRequest struct {
	Field string `json:"field" binding:"required,oneof=description quantity rate"`
	Value string `json:"value"`
}

// DraftResponse is a draft's full control state
type DraftResponse struct {
	ID        string       `json:"id"`
	Form      binding.Form `json:"form"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
}

// SummaryResponse is the formatted summary panel
type SummaryResponse struct {
	summary.Display
	VATLabel string `json:"vatLabel"`
}

// NewSummaryResponse wraps a display with its derived labels
func NewSummaryResponse(d summary.Display) SummaryResponse {
	return SummaryResponse{Display: d, VATLabel: d.VATLabel()}
}

// SaveInvoiceResponse reports a completed save
type SaveInvoiceResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InvoiceListResponse lists saved invoices, newest first
type InvoiceListResponse struct {
	Invoices []InvoiceListItem `json:"invoices"`
}

// InvoiceListItem is one saved invoice with its display total. Total is
// null when the computed total overflowed.
type InvoiceListItem struct {
	domain.InvoiceSummary
	Total        *float64 `json:"total"`
	DisplayTotal string   `json:"displayTotal"`
}

// NewInvoiceListResponse formats summaries for display
func NewInvoiceListResponse(list []domain.InvoiceSummary) InvoiceListResponse {
	items := make([]InvoiceListItem, len(list))
	for i, s := range list {
		items[i] = InvoiceListItem{
			InvoiceSummary: s,
			DisplayTotal:   s.CurrencySymbol + summary.Money(s.Total),
		}
		if total := s.Total; !math.IsInf(total, 0) && !math.IsNaN(total) {
			items[i].Total = &total
		}
	}
	return InvoiceListResponse{Invoices: items}
}
