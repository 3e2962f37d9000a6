package domain

import (
	"time"
)

// SavedInvoice is a persisted invoice document with its identity
type SavedInvoice struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Invoice   *Invoice  `json:"invoice"`
}

// InvoiceSummary is one row of the saved-invoices list
type InvoiceSummary struct {
	ID             string    `json:"id"`
	Number         string    `json:"number"`
	ClientName     string    `json:"clientName"`
	Date           string    `json:"date"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currencySymbol"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Summarize builds the list row for a saved invoice
func (s SavedInvoice) Summarize() InvoiceSummary {
	return InvoiceSummary{
		ID:             s.ID,
		Number:         s.Invoice.InvoiceDetails.Number,
		ClientName:     s.Invoice.ClientInfo.Name,
		Date:           s.Invoice.InvoiceDetails.Date,
		Currency:       s.Invoice.Currency,
		CurrencySymbol: s.Invoice.Symbol(),
		Total:          s.Invoice.Recompute().Total,
		CreatedAt:      s.CreatedAt,
	}
}

// Draft is a server-held editing session owning one invoice model
type Draft struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Invoice   *Invoice  `json:"invoice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VisibleTo reports whether ownerID may act on the draft
func (d *Draft) VisibleTo(ownerID string) bool {
	return d.OwnerID == ownerID
}
