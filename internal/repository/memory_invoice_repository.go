package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

type storedDocument struct {
	id        string
	ownerID   string
	createdAt time.Time
	document  []byte
}

// MemoryInvoiceRepository keeps saved invoices in process memory. Documents
// are held in their serialized form, the same as a remote store would.
type MemoryInvoiceRepository struct {
	mu   sync.RWMutex
	docs map[string]storedDocument
	now  func() time.Time
}

// NewMemoryInvoiceRepository creates an empty in-memory invoice store
func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{
		docs: make(map[string]storedDocument),
		now:  time.Now,
	}
}

// Save serializes inv and stores it under a new id
func (r *MemoryInvoiceRepository) Save(ctx context.Context, inv *domain.Invoice, ownerID string) (*domain.SavedInvoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice: %w", err)
	}

	doc := storedDocument{
		id:        uuid.NewString(),
		ownerID:   ownerID,
		createdAt: r.now().UTC(),
		document:  data,
	}

	r.mu.Lock()
	r.docs[doc.id] = doc
	r.mu.Unlock()

	return &domain.SavedInvoice{
		ID:        doc.id,
		OwnerID:   ownerID,
		CreatedAt: doc.createdAt,
		Invoice:   inv.Clone(),
	}, nil
}

// List returns summaries for ownerID, newest first
func (r *MemoryInvoiceRepository) List(ctx context.Context, ownerID string) ([]domain.InvoiceSummary, error) {
	r.mu.RLock()
	var owned []storedDocument
	for _, doc := range r.docs {
		if doc.ownerID == ownerID {
			owned = append(owned, doc)
		}
	}
	r.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].createdAt.Equal(owned[j].createdAt) {
			return owned[i].id > owned[j].id
		}
		return owned[i].createdAt.After(owned[j].createdAt)
	})

	summaries := make([]domain.InvoiceSummary, 0, len(owned))
	for _, doc := range owned {
		saved, err := decodeStored(doc)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, saved.Summarize())
	}
	return summaries, nil
}

// Get retrieves a saved invoice by id
func (r *MemoryInvoiceRepository) Get(ctx context.Context, invoiceID string) (*domain.SavedInvoice, error) {
	r.mu.RLock()
	doc, ok := r.docs[invoiceID]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	return decodeStored(doc)
}

func decodeStored(doc storedDocument) (*domain.SavedInvoice, error) {
	inv, err := domain.DecodeInvoice(doc.document, doc.createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode invoice %s: %w", doc.id, err)
	}
	return &domain.SavedInvoice{
		ID:        doc.id,
		OwnerID:   doc.ownerID,
		CreatedAt: doc.createdAt,
		Invoice:   inv,
	}, nil
}
