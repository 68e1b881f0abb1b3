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

// RateRepo defines the persistence operations for exchange rates.
// The UI flow only ever lists rates, but the full CRUD surface exists on the
// store and is exposed for completeness.
type RateRepo interface {
	// Create inserts a new rate record and returns the persisted record.
	Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)

	// GetByID retrieves a single rate record.
	// Returns domain.ErrNotFound if no rate with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.ExchangeRate, error)

	// List returns the whole rate table in insertion order. Conversion scans
	// this sequence front to back, so insertion order is lookup precedence.
	List(ctx context.Context) ([]domain.ExchangeRate, error)

	// Update overwrites a rate record and returns the updated record.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error)

	// Delete removes a rate record. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgRateRepo is the Postgres implementation of RateRepo.
type pgRateRepo struct {
	db db
}

// NewRateRepo constructs a RateRepo backed by the provided db connection.
func NewRateRepo(db db) RateRepo {
	return &pgRateRepo{db: db}
}

// Create inserts a new rate row and returns the full persisted record.
func (r *pgRateRepo) Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	const q = `
		INSERT INTO exchange_rates (from_currency, to_currency, rate, ts)
		VALUES (@from_currency, @to_currency, @rate, @ts)
		RETURNING id, from_currency, to_currency, rate, ts`

	args := pgx.NamedArgs{
		"from_currency": rate.From,
		"to_currency":   rate.To,
		"rate":          rate.Rate,
		"ts":            rate.Timestamp,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRate(row)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("repo.RateRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a rate by primary key.
func (r *pgRateRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.ExchangeRate, error) {
	const q = `
		SELECT id, from_currency, to_currency, rate, ts
		FROM exchange_rates
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanRate(row)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("repo.RateRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all rates in insertion order (seq is a serial column kept
// solely to preserve lookup precedence).
func (r *pgRateRepo) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	const q = `
		SELECT id, from_currency, to_currency, rate, ts
		FROM exchange_rates
		ORDER BY seq`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RateRepo.List: %w", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		rate, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RateRepo.List: scan: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RateRepo.List: rows: %w", err)
	}
	return rates, nil
}

// Update overwrites a rate row and returns the updated record.
func (r *pgRateRepo) Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	const q = `
		UPDATE exchange_rates
		SET from_currency = @from_currency,
		    to_currency   = @to_currency,
		    rate          = @rate,
		    ts            = @ts
		WHERE id = @id
		RETURNING id, from_currency, to_currency, rate, ts`

	args := pgx.NamedArgs{
		"id":            rate.ID,
		"from_currency": rate.From,
		"to_currency":   rate.To,
		"rate":          rate.Rate,
		"ts":            rate.Timestamp,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRate(row)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("repo.RateRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a rate by primary key.
func (r *pgRateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM exchange_rates WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.RateRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RateRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanRate maps a single database row into a domain.ExchangeRate.
func scanRate(s scanner) (domain.ExchangeRate, error) {
	var (
		rate domain.ExchangeRate
		id   pgtype.UUID
	)
	err := s.Scan(&id, &rate.From, &rate.To, &rate.Rate, &rate.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExchangeRate{}, domain.ErrNotFound
		}
		return domain.ExchangeRate{}, err
	}
	rate.ID = uuid.UUID(id.Bytes)
	return rate, nil
}
