package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

// DraftRepository stores in-progress editing sessions
type DraftRepository interface {
	Create(ctx context.Context, draft *domain.Draft) error
	Get(ctx context.Context, draftID string) (*domain.Draft, error)
	Update(ctx context.Context, draft *domain.Draft) error
	Delete(ctx context.Context, draftID string) error
}

// draftRecord is the serialized form of a draft. The invoice stays raw so it
// can be decoded with the model's merge rules.
type draftRecord struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"ownerId"`
	Invoice   json.RawMessage `json:"invoice"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func encodeDraft(d *domain.Draft) ([]byte, error) {
	inv, err := json.Marshal(d.Invoice)
	if err != nil {
		return nil, err
	}
	return json.Marshal(draftRecord{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Invoice:   inv,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	})
}

func decodeDraft(data []byte) (*domain.Draft, error) {
	var rec draftRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	inv, err := domain.DecodeInvoice(rec.Invoice, rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Draft{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Invoice:   inv,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// MemoryDraftRepository keeps drafts in process memory
type MemoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*domain.Draft
}

// NewMemoryDraftRepository creates an empty in-memory draft store
func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{drafts: make(map[string]*domain.Draft)}
}

func copyDraft(d *domain.Draft) *domain.Draft {
	cp := *d
	cp.Invoice = d.Invoice.Clone()
	return &cp
}

// Create stores a new draft
func (r *MemoryDraftRepository) Create(_ context.Context, draft *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = copyDraft(draft)
	return nil
}

// Get returns a copy of the draft
func (r *MemoryDraftRepository) Get(_ context.Context, draftID string) (*domain.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drafts[draftID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return copyDraft(d), nil
}

// Update replaces an existing draft
func (r *MemoryDraftRepository) Update(_ context.Context, draft *domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[draft.ID]; !ok {
		return ErrDraftNotFound
	}
	r.drafts[draft.ID] = copyDraft(draft)
	return nil
}

// Delete removes a draft
func (r *MemoryDraftRepository) Delete(_ context.Context, draftID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[draftID]; !ok {
		return ErrDraftNotFound
	}
	delete(r.drafts, draftID)
	return nil
}
