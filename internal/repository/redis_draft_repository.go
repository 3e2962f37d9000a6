package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
)

const draftKeyPrefix = "invoice-builder:draft:"

// RedisDraftRepository stores drafts as JSON values that expire after ttl.
// Every write refreshes the expiry.
type RedisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftRepository creates a Redis-backed draft store
func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) *RedisDraftRepository {
	return &RedisDraftRepository{client: client, ttl: ttl}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

// Create stores a new draft
func (r *RedisDraftRepository) Create(ctx context.Context, draft *domain.Draft) error {
	data, err := encodeDraft(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := r.client.Set(ctx, draftKey(draft.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

// Get loads a draft, or ErrDraftNotFound when it is missing or expired
func (r *RedisDraftRepository) Get(ctx context.Context, draftID string) (*domain.Draft, error) {
	data, err := r.client.Get(ctx, draftKey(draftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}
	d, err := decodeDraft(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode draft %s: %w", draftID, err)
	}
	return d, nil
}

// Update overwrites an existing draft
func (r *RedisDraftRepository) Update(ctx context.Context, draft *domain.Draft) error {
	data, err := encodeDraft(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	ok, err := r.client.SetXX(ctx, draftKey(draft.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update draft: %w", err)
	}
	if !ok {
		return ErrDraftNotFound
	}
	return nil
}

// Delete removes a draft
func (r *RedisDraftRepository) Delete(ctx context.Context, draftID string) error {
	n, err := r.client.Del(ctx, draftKey(draftID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if n == 0 {
		return ErrDraftNotFound
	}
	return nil
}
