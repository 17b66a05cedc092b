package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/domain/lifecycle"
	"instant_offer/internal/usecase/interfaces"
)

// QuoteMemoryRepository keeps quotes in process memory. It honours the same
// contract as the DynamoDB repository and is used for local runs and tests.
type QuoteMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]entities.Quote
	byToken map[string]string
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{
		byID:    make(map[string]entities.Quote),
		byToken: make(map[string]string),
	}
}

func (r *QuoteMemoryRepository) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[q.QuoteID]; ok {
		return entities.Quote{}, interfaces.ErrDuplicateQuoteID
	}
	r.byID[q.QuoteID] = q.Clone()
	r.byToken[q.AccessToken] = q.QuoteID
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) GetByID(_ context.Context, quoteID string) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.byID[quoteID]
	if !ok {
		return entities.Quote{}, nil
	}
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) GetByAccessToken(_ context.Context, token string) (entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byToken[token]
	if !ok {
		return entities.Quote{}, nil
	}
	return r.byID[id].Clone(), nil
}

func (r *QuoteMemoryRepository) Save(_ context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.byID[q.QuoteID]
	if !ok || current.Version != expectedVersion {
		return entities.Quote{}, interfaces.ErrVersionConflict
	}
	q.Version = expectedVersion + 1
	r.byID[q.QuoteID] = q.Clone()
	return q.Clone(), nil
}

func (r *QuoteMemoryRepository) List(_ context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, error) {
	r.mu.RLock()
	out := make([]entities.Quote, 0, len(r.byID))
	for _, q := range r.byID {
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if !filter.CreatedAfter.IsZero() && q.CreatedAt.Before(filter.CreatedAfter) {
			continue
		}
		if !filter.CreatedBefore.IsZero() && !q.CreatedAt.Before(filter.CreatedBefore) {
			continue
		}
		if !filter.ExpiredAt.IsZero() && !expiredAt(q, filter.ExpiredAt) {
			continue
		}
		if !filter.ActiveAt.IsZero() && expiredAt(q, filter.ActiveAt) {
			continue
		}
		out = append(out, q.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].QuoteID < out[j].QuoteID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// expiredAt mirrors lifecycle.EffectiveStatus for one instant.
func expiredAt(q entities.Quote, at time.Time) bool {
	return !lifecycle.IsTerminal(q.Status) && !q.ExpiresAt.IsZero() && q.ExpiresAt.Before(at)
}
