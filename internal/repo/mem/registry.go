package mem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// registryLatency mirrors the original mock category/payment-mode delays.
var registryLatency = latency{list: 200 * time.Millisecond, get: 200 * time.Millisecond,
	create: 300 * time.Millisecond, update: 300 * time.Millisecond, delete: 250 * time.Millisecond}

// RegistryRepo is the in-memory implementation of repo.RegistryRepo, used
// for both categories and payment modes.
type RegistryRepo struct {
	opts options

	mu      sync.Mutex
	entries []domain.RegistryEntry
}

// NewCategoryRepo constructs an in-memory registry seeded with the default
// categories.
func NewCategoryRepo(opts ...Option) *RegistryRepo {
	return newRegistryRepo(domain.DefaultCategories(), opts)
}

// NewPaymentModeRepo constructs an in-memory registry seeded with the
// default payment modes.
func NewPaymentModeRepo(opts ...Option) *RegistryRepo {
	return newRegistryRepo(domain.DefaultPaymentModes(), opts)
}

func newRegistryRepo(seed []domain.RegistryEntry, opts []Option) *RegistryRepo {
	r := &RegistryRepo{opts: buildOptions(opts)}
	r.entries = append(r.entries, seed...)
	return r
}

var _ repo.RegistryRepo = (*RegistryRepo)(nil)

// List returns all entries in insertion order (seeded defaults first).
func (r *RegistryRepo) List(ctx context.Context) ([]domain.RegistryEntry, error) {
	if err := r.opts.wait(ctx, registryLatency.list); err != nil {
		return nil, fmt.Errorf("mem.RegistryRepo.List: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.RegistryEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// GetByID returns the entry with the given slug.
func (r *RegistryRepo) GetByID(ctx context.Context, id string) (domain.RegistryEntry, error) {
	if err := r.opts.wait(ctx, registryLatency.get); err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.GetByID: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.GetByID: %w", domain.ErrNotFound)
}

// Create appends a new entry. The service has already derived the slug and
// checked for collisions.
func (r *RegistryRepo) Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	if err := r.opts.wait(ctx, registryLatency.create); err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return entry, nil
}

// Update overwrites the stored entry with the same slug.
func (r *RegistryRepo) Update(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	if err := r.opts.wait(ctx, registryLatency.update); err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.entries {
		if cur.ID == entry.ID {
			r.entries[i] = entry
			return entry, nil
		}
	}
	return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes the entry with the given slug and returns it.
func (r *RegistryRepo) Delete(ctx context.Context, id string) (domain.RegistryEntry, error) {
	if err := r.opts.wait(ctx, registryLatency.delete); err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.Delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return e, nil
		}
	}
	return domain.RegistryEntry{}, fmt.Errorf("mem.RegistryRepo.Delete: %w", domain.ErrNotFound)
}
