package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridwanfathin/invoice-builder-service/internal/currency"
	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

// PostgresInvoiceRepository implements InvoiceRepository using PostgreSQL.
// The full document is kept in a JSONB column next to the list columns.
type PostgresInvoiceRepository struct {
	db *pgxpool.Pool
}

// NewPostgresInvoiceRepository creates a new PostgreSQL invoice repository
func NewPostgresInvoiceRepository(db *pgxpool.Pool) *PostgresInvoiceRepository {
	return &PostgresInvoiceRepository{db: db}
}

// Save inserts a new invoice document
func (r *PostgresInvoiceRepository) Save(ctx context.Context, inv *domain.Invoice, ownerID string) (*domain.SavedInvoice, error) {
	document, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("failed to encode invoice: %w", err)
	}

	saved := &domain.SavedInvoice{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Invoice: inv.Clone(),
	}
	totals := inv.Recompute()

	err = r.db.QueryRow(ctx, `
		INSERT INTO invoices (id, user_id, number, client_name, invoice_date, currency, total, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, saved.ID, ownerID, inv.InvoiceDetails.Number, inv.ClientInfo.Name, inv.InvoiceDetails.Date,
		inv.Currency, totals.Total, document).Scan(&saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice: %w", err)
	}

	return saved, nil
}

// List returns ownerID's invoice summaries, newest first
func (r *PostgresInvoiceRepository) List(ctx context.Context, ownerID string) ([]domain.InvoiceSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, client_name, invoice_date, currency, total, created_at
		FROM invoices
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	summaries := []domain.InvoiceSummary{}
	for rows.Next() {
		var s domain.InvoiceSummary
		if err := rows.Scan(&s.ID, &s.Number, &s.ClientName, &s.Date, &s.Currency, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		s.CurrencySymbol = currency.Symbol(s.Currency)
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating invoices: %w", err)
	}

	return summaries, nil
}

// Get retrieves one invoice document by id
func (r *PostgresInvoiceRepository) Get(ctx context.Context, invoiceID string) (*domain.SavedInvoice, error) {
	if _, err := uuid.Parse(invoiceID); err != nil {
		return nil, ErrInvoiceNotFound
	}

	var (
		saved    domain.SavedInvoice
		document []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at, document
		FROM invoices
		WHERE id = $1
	`, invoiceID).Scan(&saved.ID, &saved.OwnerID, &saved.CreatedAt, &document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	inv, err := domain.DecodeInvoice(document, saved.CreatedAt.In(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to decode invoice %s: %w", invoiceID, err)
	}
	saved.Invoice = inv

	return &saved, nil
}
