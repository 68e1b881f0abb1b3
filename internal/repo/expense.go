package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tripledger/tripledger/internal/domain"
)

// ExpenseRepo defines the persistence operations for Expenses.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record.
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// GetByID retrieves a single expense.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error)

	// List returns expenses ordered by date descending, optionally filtered
	// to a single trip. Pass nil to list across all trips.
	List(ctx context.Context, tripID *uuid.UUID) ([]domain.Expense, error)

	// ListPaged returns one page of expenses plus the total count matching
	// the same filter.
	ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error)

	// Update overwrites the mutable fields of an expense and returns the
	// updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// Delete removes an expense by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByTrip removes all expenses owned by the given trip and returns
	// how many were removed. Used by the trip-deletion cascade; deleting
	// zero rows is not an error.
	DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error)
}

const expenseCols = `id, trip_id, amount, currency, converted_amount,
		category_id, payment_mode_id, merchant, date, notes, receipt_url, created_at, updated_at`

// pgExpenseRepo is the Postgres implementation of ExpenseRepo.
type pgExpenseRepo struct {
	db db
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db db) ExpenseRepo {
	return &pgExpenseRepo{db: db}
}

func expenseArgs(e domain.Expense) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":          e.TripID,
		"amount":           e.Amount,
		"currency":         e.Currency,
		"converted_amount": e.ConvertedAmount,
		"category_id":      e.CategoryID,
		"payment_mode_id":  e.PaymentModeID,
		"merchant":         e.Merchant,
		"date":             e.Date,
		"notes":            e.Notes,
		"receipt_url":      e.ReceiptURL,
	}
}

// Create inserts a new expense row and returns the full persisted record.
func (r *pgExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (trip_id, amount, currency, converted_amount,
			category_id, payment_mode_id, merchant, date, notes, receipt_url)
		VALUES (@trip_id, @amount, @currency, @converted_amount,
			@category_id, @payment_mode_id, @merchant, @date, @notes, @receipt_url)
		RETURNING ` + expenseCols

	row := r.db.QueryRow(ctx, q, expenseArgs(e))
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an expense by primary key.
func (r *pgExpenseRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Expense, error) {
	const q = `SELECT ` + expenseCols + ` FROM expenses WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns expenses ordered by date descending. A nil tripID lists all
// expenses; otherwise only the given trip's.
func (r *pgExpenseRepo) List(ctx context.Context, tripID *uuid.UUID) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseCols + `
		FROM expenses
		WHERE @trip_id::uuid IS NULL OR trip_id = @trip_id
		ORDER BY date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ExpenseRepo.List: %w", err)
	}
	defer rows.Close()

	return collectExpenses(rows, "repo.ExpenseRepo.List")
}

// ListPaged returns one page of expenses and the total count for the filter.
func (r *pgExpenseRepo) ListPaged(ctx context.Context, tripID *uuid.UUID, p domain.PaginationParams) ([]domain.Expense, int64, error) {
	const countQ = `
		SELECT count(*) FROM expenses
		WHERE @trip_id::uuid IS NULL OR trip_id = @trip_id`

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"trip_id": tripID}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + expenseCols + `
		FROM expenses
		WHERE @trip_id::uuid IS NULL OR trip_id = @trip_id
		ORDER BY date DESC, created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{
		"trip_id": tripID,
		"limit":   p.Limit,
		"offset":  p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ExpenseRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows, "repo.ExpenseRepo.ListPaged")
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

// Update overwrites the mutable fields of an expense and returns the updated record.
func (r *pgExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		UPDATE expenses
		SET trip_id          = @trip_id,
		    amount           = @amount,
		    currency         = @currency,
		    converted_amount = @converted_amount,
		    category_id      = @category_id,
		    payment_mode_id  = @payment_mode_id,
		    merchant         = @merchant,
		    date             = @date,
		    notes            = @notes,
		    receipt_url      = @receipt_url,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + expenseCols

	args := expenseArgs(e)
	args["id"] = e.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanExpense(row)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("repo.ExpenseRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an expense by primary key.
func (r *pgExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM expenses WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteByTrip removes all expenses for a trip. Zero deletions is fine —
// a trip with no expenses is a valid cascade target.
func (r *pgExpenseRepo) DeleteByTrip(ctx context.Context, tripID uuid.UUID) (int64, error) {
	const q = `DELETE FROM expenses WHERE trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return 0, fmt.Errorf("repo.ExpenseRepo.DeleteByTrip: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectExpenses(rows pgx.Rows, op string) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return expenses, nil
}

// scanExpense maps a single database row into a domain.Expense.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e      domain.Expense
		id     pgtype.UUID
		tripID pgtype.UUID
	)
	err := s.Scan(&id, &tripID, &e.Amount, &e.Currency, &e.ConvertedAmount,
		&e.CategoryID, &e.PaymentModeID, &e.Merchant, &e.Date, &e.Notes,
		&e.ReceiptURL, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Expense{}, domain.ErrNotFound
		}
		return domain.Expense{}, err
	}
	e.ID = uuid.UUID(id.Bytes)
	e.TripID = uuid.UUID(tripID.Bytes)
	return e, nil
}
