package mem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// rateLatency mirrors the original mock exchange-rate store delays.
var rateLatency = latency{list: 200 * time.Millisecond, get: 150 * time.Millisecond,
	create: 300 * time.Millisecond, update: 250 * time.Millisecond, delete: 200 * time.Millisecond}

// RateRepo is the in-memory implementation of repo.RateRepo.
// Insertion order is preserved — conversion treats it as lookup precedence.
type RateRepo struct {
	opts options

	mu    sync.Mutex
	rates []domain.ExchangeRate
}

// NewRateRepo constructs an in-memory rate store seeded with the given
// records. Pass SeedRates() for the default mock table.
func NewRateRepo(seed []domain.ExchangeRate, opts ...Option) *RateRepo {
	r := &RateRepo{opts: buildOptions(opts)}
	r.rates = append(r.rates, seed...)
	return r
}

var _ repo.RateRepo = (*RateRepo)(nil)

// Create appends a new rate record with a generated ID and timestamp.
func (r *RateRepo) Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	if err := r.opts.wait(ctx, rateLatency.create); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("mem.RateRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rate.ID = uuid.New()
	if rate.Timestamp.IsZero() {
		rate.Timestamp = time.Now().UTC()
	}
	r.rates = append(r.rates, rate)
	return rate, nil
}

// GetByID returns a copy of the rate record with the given ID.
func (r *RateRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ExchangeRate, error) {
	if err := r.opts.wait(ctx, rateLatency.get); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("mem.RateRepo.GetByID: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rate := range r.rates {
		if rate.ID == id {
			return rate, nil
		}
	}
	return domain.ExchangeRate{}, fmt.Errorf("mem.RateRepo.GetByID: %w", domain.ErrNotFound)
}

// List returns the whole rate table in insertion order.
func (r *RateRepo) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	if err := r.opts.wait(ctx, rateLatency.list); err != nil {
		return nil, fmt.Errorf("mem.RateRepo.List: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ExchangeRate, len(r.rates))
	copy(out, r.rates)
	return out, nil
}

// Update overwrites the stored rate record with the same ID.
func (r *RateRepo) Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	if err := r.opts.wait(ctx, rateLatency.update); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("mem.RateRepo.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.rates {
		if cur.ID == rate.ID {
			r.rates[i] = rate
			return rate, nil
		}
	}
	return domain.ExchangeRate{}, fmt.Errorf("mem.RateRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes the rate record with the given ID.
func (r *RateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.opts.wait(ctx, rateLatency.delete); err != nil {
		return fmt.Errorf("mem.RateRepo.Delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rate := range r.rates {
		if rate.ID == id {
			r.rates = append(r.rates[:i], r.rates[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("mem.RateRepo.Delete: %w", domain.ErrNotFound)
}
