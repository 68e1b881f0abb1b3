package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tripledger/tripledger/internal/domain"
)

// RegistryRepo defines the persistence operations shared by the category and
// payment-mode registries. Entries are keyed by slug, not UUID — the slug is
// the identifier expenses reference.
//
// Default-set protection and duplicate-name checks are business rules and
// live in the service layer, not here.
type RegistryRepo interface {
	// List returns all entries in insertion order (defaults first).
	List(ctx context.Context) ([]domain.RegistryEntry, error)

	// GetByID retrieves a single entry by slug.
	// Returns domain.ErrNotFound if no entry with that slug exists.
	GetByID(ctx context.Context, id string) (domain.RegistryEntry, error)

	// Create inserts a new entry and returns the persisted record.
	Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error)

	// Update overwrites the descriptive fields of an entry and returns the
	// updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error)

	// Delete removes an entry and returns the removed record.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) (domain.RegistryEntry, error)
}

// pgRegistryRepo is the Postgres implementation of RegistryRepo.
// The same implementation serves both registries; only the table differs.
type pgRegistryRepo struct {
	db    db
	table string
}

// NewCategoryRepo constructs a RegistryRepo over the categories table.
func NewCategoryRepo(db db) RegistryRepo {
	return &pgRegistryRepo{db: db, table: "categories"}
}

// NewPaymentModeRepo constructs a RegistryRepo over the payment_modes table.
func NewPaymentModeRepo(db db) RegistryRepo {
	return &pgRegistryRepo{db: db, table: "payment_modes"}
}

// List returns all entries ordered by insertion (seq), so seeded defaults
// come before user-created entries.
func (r *pgRegistryRepo) List(ctx context.Context) ([]domain.RegistryEntry, error) {
	q := fmt.Sprintf(`
		SELECT id, name, description, icon, color
		FROM %s
		ORDER BY seq`, r.table)

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RegistryRepo.List(%s): %w", r.table, err)
	}
	defer rows.Close()

	entries := []domain.RegistryEntry{}
	for rows.Next() {
		e, err := scanRegistryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RegistryRepo.List(%s): scan: %w", r.table, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RegistryRepo.List(%s): rows: %w", r.table, err)
	}
	return entries, nil
}

// GetByID retrieves an entry by slug.
func (r *pgRegistryRepo) GetByID(ctx context.Context, id string) (domain.RegistryEntry, error) {
	q := fmt.Sprintf(`
		SELECT id, name, description, icon, color
		FROM %s
		WHERE id = @id`, r.table)

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanRegistryEntry(row)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("repo.RegistryRepo.GetByID(%s): %w", r.table, err)
	}
	return result, nil
}

// Create inserts a new entry row.
func (r *pgRegistryRepo) Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	q := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, icon, color)
		VALUES (@id, @name, @description, @icon, @color)
		RETURNING id, name, description, icon, color`, r.table)

	args := pgx.NamedArgs{
		"id":          entry.ID,
		"name":        entry.Name,
		"description": entry.Description,
		"icon":        entry.Icon,
		"color":       entry.Color,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRegistryEntry(row)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("repo.RegistryRepo.Create(%s): %w", r.table, err)
	}
	return result, nil
}

// Update overwrites the descriptive fields of an entry.
func (r *pgRegistryRepo) Update(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	q := fmt.Sprintf(`
		UPDATE %s
		SET name        = @name,
		    description = @description,
		    icon        = @icon,
		    color       = @color
		WHERE id = @id
		RETURNING id, name, description, icon, color`, r.table)

	args := pgx.NamedArgs{
		"id":          entry.ID,
		"name":        entry.Name,
		"description": entry.Description,
		"icon":        entry.Icon,
		"color":       entry.Color,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRegistryEntry(row)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("repo.RegistryRepo.Update(%s): %w", r.table, err)
	}
	return result, nil
}

// Delete removes an entry by slug and returns the removed record, using
// DELETE ... RETURNING so removal and read-back are one statement.
func (r *pgRegistryRepo) Delete(ctx context.Context, id string) (domain.RegistryEntry, error) {
	q := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = @id
		RETURNING id, name, description, icon, color`, r.table)

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanRegistryEntry(row)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("repo.RegistryRepo.Delete(%s): %w", r.table, err)
	}
	return result, nil
}

// scanRegistryEntry maps a single database row into a domain.RegistryEntry.
func scanRegistryEntry(s scanner) (domain.RegistryEntry, error) {
	var e domain.RegistryEntry
	err := s.Scan(&e.ID, &e.Name, &e.Description, &e.Icon, &e.Color)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RegistryEntry{}, domain.ErrNotFound
		}
		return domain.RegistryEntry{}, err
	}
	return e, nil
}
