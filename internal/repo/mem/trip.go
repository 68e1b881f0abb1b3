package mem

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// tripLatency mirrors the original mock trip store delays.
var tripLatency = latency{list: 300 * time.Millisecond, get: 200 * time.Millisecond,
	create: 400 * time.Millisecond, update: 350 * time.Millisecond, delete: 250 * time.Millisecond}

// TripRepo is the in-memory implementation of repo.TripRepo.
type TripRepo struct {
	opts options

	mu    sync.Mutex
	trips []domain.Trip
}

// NewTripRepo constructs an empty in-memory trip store.
func NewTripRepo(opts ...Option) *TripRepo {
	return &TripRepo{opts: buildOptions(opts)}
}

var _ repo.TripRepo = (*TripRepo)(nil)

// Create appends a new trip with a generated ID and timestamps.
func (r *TripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := r.opts.wait(ctx, tripLatency.create); err != nil {
		return domain.Trip{}, fmt.Errorf("mem.TripRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	trip.ID = uuid.New()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	r.trips = append(r.trips, trip)
	return trip, nil
}

// GetByID returns a copy of the trip with the given ID.
func (r *TripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	if err := r.opts.wait(ctx, tripLatency.get); err != nil {
		return domain.Trip{}, fmt.Errorf("mem.TripRepo.GetByID: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("mem.TripRepo.GetByID: %w", domain.ErrNotFound)
}

// List returns all trips ordered by start date descending, matching the
// Postgres implementation's ordering.
func (r *TripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	if err := r.opts.wait(ctx, tripLatency.list); err != nil {
		return nil, fmt.Errorf("mem.TripRepo.List: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Trip, len(r.trips))
	copy(out, r.trips)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// Update overwrites the stored trip with the same ID.
func (r *TripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := r.opts.wait(ctx, tripLatency.update); err != nil {
		return domain.Trip{}, fmt.Errorf("mem.TripRepo.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.trips {
		if t.ID == trip.ID {
			trip.CreatedAt = t.CreatedAt
			trip.UpdatedAt = time.Now().UTC()
			r.trips[i] = trip
			return trip, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("mem.TripRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes the trip with the given ID.
func (r *TripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.opts.wait(ctx, tripLatency.delete); err != nil {
		return fmt.Errorf("mem.TripRepo.Delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.trips {
		if t.ID == id {
			r.trips = append(r.trips[:i], r.trips[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("mem.TripRepo.Delete: %w", domain.ErrNotFound)
}
