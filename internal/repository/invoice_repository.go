package repository

import (
	"context"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

// InvoiceRepository defines the interface for saved invoice storage
type InvoiceRepository interface {
	// Save stores a copy of inv for ownerID, assigning an id and creation time
	Save(ctx context.Context, inv *domain.Invoice, ownerID string) (*domain.SavedInvoice, error)

	// List returns ownerID's invoices, newest created first
	List(ctx context.Context, ownerID string) ([]domain.InvoiceSummary, error)

	// Get retrieves a saved invoice by id, or ErrInvoiceNotFound
	Get(ctx context.Context, invoiceID string) (*domain.SavedInvoice, error)
}
