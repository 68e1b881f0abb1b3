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

// expenseLatency mirrors the original mock expense store delays.
var expenseLatency = latency{list: 250 * time.Millisecond, get: 200 * time.Millisecond,
	create: 400 * time.Millisecond, update: 350 * time.Millisecond, delete: 250 * time.Millisecond}

// ExpenseRepo is the in-memory implementation of repo.ExpenseRepo.
type ExpenseRepo struct {
	opts options

	mu       sync.Mutex
	expenses []domain.Expense
}

// NewExpenseRepo constructs an empty in-memory expense store.
func NewExpenseRepo(opts ...Option) *ExpenseRepo {
	return &ExpenseRepo{opts: buildOptions(opts)}
}

var _ repo.ExpenseRepo = (*ExpenseRepo)(nil)

// Create appends a new expense with a generated ID and timestamps.
func (r *ExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if err := r.opts.wait(ctx, expenseLatency.create); err != nil {
		return domain.Expense{}, fmt.Errorf("mem.ExpenseRepo.Create: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	e.ID = uuid.New()
	e.CreatedAt = now
	e.UpdatedAt = now
	r.expenses = append(r.expenses, e)
	return e, nil
}

// GetByID returns a copy of the expense with the given ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	if err := r.opts.wait(ctx, expenseLatency.get); err != nil {
		return domain.Expense{}, fmt.Errorf("mem.ExpenseRepo.GetByID: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Expense{}, fmt.Errorf("mem.ExpenseRepo.GetByID: %w", domain.ErrNotFound)
}

// List returns expenses ordered by date descending, optionally filtered to
// one trip. Expenses on the same date keep insertion order.
func (r *ExpenseRepo) List(ctx context.Context, tripID *uuid.UUID) ([]domain.Expense, error) {
	if err := r.opts.wait(ctx, expenseLatency.list); err != nil {
		return nil, fmt.Errorf("mem.ExpenseRepo.List: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.filtered(tripID), nil
}

// ListPaged returns one page of the filtered, date-ordered expense list
// plus the total count for the filter.
func (r *ExpenseRepo) ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	if err := r.opts.wait(ctx, expenseLatency.list); err != nil {
		return nil, 0, fmt.Errorf("mem.ExpenseRepo.ListPaged: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.filtered(tripID)
	total := int64(len(all))

	start := p.Offset()
	if start >= len(all) {
		return []domain.Expense{}, total, nil
	}
	end := start + p.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// Update overwrites the stored expense with the same ID.
func (r *ExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	if err := r.opts.wait(ctx, expenseLatency.update); err != nil {
		return domain.Expense{}, fmt.Errorf("mem.ExpenseRepo.Update: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, cur := range r.expenses {
		if cur.ID == e.ID {
			e.CreatedAt = cur.CreatedAt
			e.UpdatedAt = time.Now().UTC()
			r.expenses[i] = e
			return e, nil
		}
	}
	return domain.Expense{}, fmt.Errorf("mem.ExpenseRepo.Update: %w", domain.ErrNotFound)
}

// Delete removes the expense with the given ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.opts.wait(ctx, expenseLatency.delete); err != nil {
		return fmt.Errorf("mem.ExpenseRepo.Delete: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("mem.ExpenseRepo.Delete: %w", domain.ErrNotFound)
}

// DeleteByTrip removes all expenses owned by tripID and reports how many.
func (r *ExpenseRepo) DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	if err := r.opts.wait(ctx, expenseLatency.delete); err != nil {
		return 0, fmt.Errorf("mem.ExpenseRepo.DeleteByTrip: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.expenses[:0]
	var removed int64
	for _, e := range r.expenses {
		if e.TripID == tripID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.expenses = kept
	return removed, nil
}

// filtered returns a date-descending copy of the expense list, optionally
// restricted to one trip. Callers must hold r.mu.
func (r *ExpenseRepo) filtered(tripID *uuid.UUID) []domain.Expense {
	out := make([]domain.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		if tripID == nil || e.TripID == *tripID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
