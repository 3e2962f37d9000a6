package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/metrics"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
	"github.com/ridwanfathin/invoice-builder-service/internal/repository"
	"github.com/ridwanfathin/invoice-builder-service/internal/storage"
	"github.com/ridwanfathin/invoice-builder-service/internal/task"
)

// InvoiceService persists finished invoices for their owners
type InvoiceService interface {
	// Save checks preconditions synchronously and then stores a snapshot of
	// inv in the background. The returned task survives the caller's context.
	Save(ctx context.Context, inv *domain.Invoice, ownerID string) (*task.Task[*domain.SavedInvoice], error)

	// List returns ownerID's saved invoices, newest first
	List(ctx context.Context, ownerID string) ([]domain.InvoiceSummary, error)

	// Get returns a saved invoice. Invoices of other owners are reported as not found.
	Get(ctx context.Context, invoiceID, ownerID string) (*domain.SavedInvoice, error)
}

// InvoiceServiceConfig holds the collaborators of the invoice service
type InvoiceServiceConfig struct {
	Repo     repository.InvoiceRepository
	Pool     *task.Pool
	Renderer render.Renderer
	Archive  storage.DocumentArchive
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

type invoiceService struct {
	repo     repository.InvoiceRepository
	pool     *task.Pool
	renderer render.Renderer
	archive  storage.DocumentArchive
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(cfg InvoiceServiceConfig) InvoiceService {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pool := cfg.Pool
	if pool == nil {
		pool = task.NewPool(1)
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = render.NewRenderer()
	}
	return &invoiceService{
		repo:     cfg.Repo,
		pool:     pool,
		renderer: renderer,
		archive:  cfg.Archive,
		metrics:  cfg.Metrics,
		logger:   logger,
	}
}

// CheckSavePreconditions reports why inv cannot be saved for ownerID, if at all
func CheckSavePreconditions(inv *domain.Invoice, ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrNoOwner
	}
	if strings.TrimSpace(inv.InvoiceDetails.Number) == "" {
		return ErrMissingInvoiceNumber
	}
	return nil
}

func (s *invoiceService) Save(ctx context.Context, inv *domain.Invoice, ownerID string) (*task.Task[*domain.SavedInvoice], error) {
	if err := CheckSavePreconditions(inv, ownerID); err != nil {
		return nil, opError("save_invoice", err)
	}

	snapshot := inv.Clone()
	t := task.Go(ctx, s.pool, func(ctx context.Context) (*domain.SavedInvoice, error) {
		saved, err := s.repo.Save(ctx, snapshot, ownerID)
		s.metrics.InvoiceSaved(err)
		if err != nil {
			return nil, opError("save_invoice", fmt.Errorf("%w: %w", ErrPersistFailure, err))
		}
		s.archiveDocument(ctx, saved)
		return saved, nil
	})

	t.OnComplete(func(saved *domain.SavedInvoice, err error) {
		if err != nil {
			s.logger.Error("invoice save failed",
				zap.String("owner_id", ownerID),
				zap.Error(err),
			)
			return
		}
		s.logger.Info("invoice saved",
			zap.String("invoice_id", saved.ID),
			zap.String("owner_id", ownerID),
			zap.String("number", saved.Invoice.InvoiceDetails.Number),
		)
	})

	return t, nil
}

// archiveDocument uploads the rendered HTML. Failures are only logged.
func (s *invoiceService) archiveDocument(ctx context.Context, saved *domain.SavedInvoice) {
	if s.archive == nil {
		return
	}
	body := []byte(s.renderer.Render(saved.Invoice))
	s.metrics.DocumentRendered(metrics.ModeArchive)

	key := "invoices/" + saved.ID + ".html"
	url, err := s.archive.UploadDocument(ctx, key, body, render.ContentType)
	if err != nil {
		s.logger.Warn("failed to archive invoice document",
			zap.String("invoice_id", saved.ID),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("archived invoice document", zap.String("invoice_id", saved.ID), zap.String("url", url))
}

func (s *invoiceService) List(ctx context.Context, ownerID string) ([]domain.InvoiceSummary, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, opError("list_invoices", ErrNoOwner)
	}
	list, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, opError("list_invoices", fmt.Errorf("%w: %w", ErrPersistFailure, err))
	}
	return list, nil
}

func (s *invoiceService) Get(ctx context.Context, invoiceID, ownerID string) (*domain.SavedInvoice, error) {
	saved, err := s.repo.Get(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, opError("get_invoice", ErrInvoiceNotFound)
		}
		return nil, opError("get_invoice", fmt.Errorf("%w: %w", ErrPersistFailure, err))
	}
	if saved.OwnerID != ownerID {
		return nil, opError("get_invoice", ErrInvoiceNotFound)
	}
	return saved, nil
}
