package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ridwanfathin/invoice-builder-service/internal/binding"
	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/repository"
	"github.com/ridwanfathin/invoice-builder-service/internal/summary"
	"github.com/ridwanfathin/invoice-builder-service/internal/task"
)

// DraftService owns editing sessions. Every event on a draft runs to
// completion before the next one on the same draft starts.
type DraftService interface {
	Create(ctx context.Context, ownerID string) (*domain.Draft, binding.Form, error)
	Form(ctx context.Context, draftID, ownerID string) (binding.Form, error)
	Invoice(ctx context.Context, draftID, ownerID string) (*domain.Invoice, error)
	Summary(ctx context.Context, draftID, ownerID string) (summary.Display, error)

	SetField(ctx context.Context, draftID, ownerID string, ev binding.FieldEvent) (binding.Refresh, error)
	AddItem(ctx context.Context, draftID, ownerID string) (binding.Refresh, error)
	UpdateItem(ctx context.Context, draftID, ownerID string, ev binding.ItemEvent) (binding.Refresh, error)
	RemoveItem(ctx context.Context, draftID, ownerID string, index int) (binding.Refresh, error)

	// Save snapshots the draft and hands it to the invoice service. The draft
	// stays editable while the save is in flight.
	Save(ctx context.Context, draftID, ownerID string) (*task.Task[*domain.SavedInvoice], error)

	// Load replaces the draft's model with a saved invoice
	Load(ctx context.Context, draftID, ownerID, invoiceID string) (binding.Form, error)

	Discard(ctx context.Context, draftID, ownerID string) error
}

// DraftServiceConfig holds the collaborators of the draft service
type DraftServiceConfig struct {
	Drafts   repository.DraftRepository
	Invoices InvoiceService
	Logger   *zap.Logger
	Now      func() time.Time
}

type draftService struct {
	drafts   repository.DraftRepository
	invoices InvoiceService
	logger   *zap.Logger
	now      func() time.Time
	locks    *keyedLock
}

// NewDraftService creates a new draft service
func NewDraftService(cfg DraftServiceConfig) DraftService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &draftService{
		drafts:   cfg.Drafts,
		invoices: cfg.Invoices,
		logger:   logger,
		now:      now,
		locks:    newKeyedLock(),
	}
}

func (s *draftService) Create(ctx context.Context, ownerID string) (*domain.Draft, binding.Form, error) {
	if ownerID == "" {
		return nil, binding.Form{}, opError("create_draft", ErrNoOwner)
	}
	now := s.now()
	d := &domain.Draft{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Invoice:   domain.NewInvoice(now),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if err := s.drafts.Create(ctx, d); err != nil {
		return nil, binding.Form{}, opError("create_draft", err)
	}
	s.logger.Debug("draft created", zap.String("draft_id", d.ID), zap.String("owner_id", ownerID))
	return d, binding.Populate(d.Invoice), nil
}

// load fetches a draft visible to ownerID. Callers hold the draft's lock.
func (s *draftService) load(ctx context.Context, op, draftID, ownerID string) (*domain.Draft, error) {
	d, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, opError(op, ErrDraftNotFound)
		}
		return nil, opError(op, err)
	}
	if !d.VisibleTo(ownerID) {
		return nil, opError(op, ErrDraftNotFound)
	}
	return d, nil
}

func (s *draftService) read(ctx context.Context, op, draftID, ownerID string) (*domain.Draft, error) {
	unlock := s.locks.Lock(draftID)
	defer unlock()
	return s.load(ctx, op, draftID, ownerID)
}

// mutate applies fn to the draft's model and stores the result
func (s *draftService) mutate(ctx context.Context, op, draftID, ownerID string, fn func(*domain.Invoice) binding.Refresh) (binding.Refresh, error) {
	unlock := s.locks.Lock(draftID)
	defer unlock()

	d, err := s.load(ctx, op, draftID, ownerID)
	if err != nil {
		return binding.Refresh{}, err
	}

	r := fn(d.Invoice)
	if !r.Applied {
		return r, nil
	}

	d.UpdatedAt = s.now().UTC()
	if err := s.drafts.Update(ctx, d); err != nil {
		return binding.Refresh{}, opError(op, err)
	}
	return r, nil
}

func (s *draftService) Form(ctx context.Context, draftID, ownerID string) (binding.Form, error) {
	d, err := s.read(ctx, "get_draft", draftID, ownerID)
	if err != nil {
		return binding.Form{}, err
	}
	return binding.Populate(d.Invoice), nil
}

func (s *draftService) Invoice(ctx context.Context, draftID, ownerID string) (*domain.Invoice, error) {
	d, err := s.read(ctx, "get_draft", draftID, ownerID)
	if err != nil {
		return nil, err
	}
	return d.Invoice, nil
}

func (s *draftService) Summary(ctx context.Context, draftID, ownerID string) (summary.Display, error) {
	d, err := s.read(ctx, "get_summary", draftID, ownerID)
	if err != nil {
		return summary.Display{}, err
	}
	return summary.NewDisplay(d.Invoice), nil
}

func (s *draftService) SetField(ctx context.Context, draftID, ownerID string, ev binding.FieldEvent) (binding.Refresh, error) {
	return s.mutate(ctx, "set_field", draftID, ownerID, func(inv *domain.Invoice) binding.Refresh {
		return binding.ApplyField(inv, ev)
	})
}

func (s *draftService) AddItem(ctx context.Context, draftID, ownerID string) (binding.Refresh, error) {
	return s.mutate(ctx, "add_item", draftID, ownerID, binding.AddItem)
}

func (s *draftService) UpdateItem(ctx context.Context, draftID, ownerID string, ev binding.ItemEvent) (binding.Refresh, error) {
	return s.mutate(ctx, "update_item", draftID, ownerID, func(inv *domain.Invoice) binding.Refresh {
		return binding.ApplyItem(inv, ev)
	})
}

func (s *draftService) RemoveItem(ctx context.Context, draftID, ownerID string, index int) (binding.Refresh, error) {
	return s.mutate(ctx, "remove_item", draftID, ownerID, func(inv *domain.Invoice) binding.Refresh {
		return binding.RemoveItem(inv, index)
	})
}

func (s *draftService) Save(ctx context.Context, draftID, ownerID string) (*task.Task[*domain.SavedInvoice], error) {
	if ownerID == "" {
		return nil, opError("save_invoice", ErrNoOwner)
	}
	d, err := s.read(ctx, "save_invoice", draftID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.invoices.Save(ctx, d.Invoice, ownerID)
}

func (s *draftService) Load(ctx context.Context, draftID, ownerID, invoiceID string) (binding.Form, error) {
	saved, err := s.invoices.Get(ctx, invoiceID, ownerID)
	if err != nil {
		return binding.Form{}, err
	}

	unlock := s.locks.Lock(draftID)
	defer unlock()

	d, err := s.load(ctx, "load_invoice", draftID, ownerID)
	if err != nil {
		return binding.Form{}, err
	}
	d.Invoice = saved.Invoice.Clone()
	d.UpdatedAt = s.now().UTC()
	if err := s.drafts.Update(ctx, d); err != nil {
		return binding.Form{}, opError("load_invoice", err)
	}

	s.logger.Info("invoice loaded into draft",
		zap.String("draft_id", draftID),
		zap.String("invoice_id", invoiceID),
	)
	return binding.Populate(d.Invoice), nil
}

func (s *draftService) Discard(ctx context.Context, draftID, ownerID string) error {
	unlock := s.locks.Lock(draftID)
	defer unlock()

	if _, err := s.load(ctx, "discard_draft", draftID, ownerID); err != nil {
		return err
	}
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return opError("discard_draft", ErrDraftNotFound)
		}
		return opError("discard_draft", err)
	}
	return nil
}
