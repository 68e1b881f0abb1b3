package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// RegistryService implements the business rules shared by the category and
// payment-mode registries: slug derivation, duplicate detection, and
// protection of the seeded default set against deletion.
type RegistryService struct {
	entries   repo.RegistryRepo
	protected map[string]bool
}

// NewCategoryService constructs the registry service for expense categories.
func NewCategoryService(entries repo.RegistryRepo) *RegistryService {
	return newRegistryService(entries, domain.DefaultCategories())
}

// NewPaymentModeService constructs the registry service for payment modes.
func NewPaymentModeService(entries repo.RegistryRepo) *RegistryService {
	return newRegistryService(entries, domain.DefaultPaymentModes())
}

func newRegistryService(entries repo.RegistryRepo, defaults []domain.RegistryEntry) *RegistryService {
	protected := make(map[string]bool, len(defaults))
	for _, d := range defaults {
		protected[d.ID] = true
	}
	return &RegistryService{entries: entries, protected: protected}
}

// List returns all entries in insertion order (defaults first).
func (s *RegistryService) List(ctx context.Context) ([]domain.RegistryEntry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RegistryService.List: %w", err)
	}
	return entries, nil
}

// Create adds a new entry. The identifier is derived from the name
// (lowercase, whitespace runs collapsed to single hyphens). Creation fails
// with domain.ErrDuplicateName when an existing entry's name matches
// case-insensitively, or when the derived identifier is already taken —
// two differently-cased or differently-spaced names normalizing to the same
// slug would otherwise silently shadow each other.
func (s *RegistryService) Create(ctx context.Context, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Create: %w: name is required", domain.ErrValidation)
	}
	entry.ID = Slugify(entry.Name)
	if entry.ID == "" {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Create: %w: name is required", domain.ErrValidation)
	}

	existing, err := s.entries.List(ctx)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Create: %w", err)
	}
	for _, cur := range existing {
		if strings.EqualFold(cur.Name, entry.Name) || cur.ID == entry.ID {
			return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Create: %w: %q", domain.ErrDuplicateName, entry.Name)
		}
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites the descriptive fields of an entry. The identifier
// never changes, even when the name does — expenses keep referencing the
// original slug.
func (s *RegistryService) Update(ctx context.Context, id string, entry domain.RegistryEntry) (domain.RegistryEntry, error) {
	entry.ID = id
	entry.Name = strings.TrimSpace(entry.Name)
	if entry.Name == "" {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Update: %w: name is required", domain.ErrValidation)
	}

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an entry and returns it. Default entries are protected:
// deleting one fails with domain.ErrProtected. Unknown identifiers fail
// with domain.ErrNotFound.
func (s *RegistryService) Delete(ctx context.Context, id string) (domain.RegistryEntry, error) {
	if s.protected[id] {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Delete: %w: %q", domain.ErrProtected, id)
	}

	deleted, err := s.entries.Delete(ctx, id)
	if err != nil {
		return domain.RegistryEntry{}, fmt.Errorf("service.RegistryService.Delete: %w", err)
	}
	return deleted, nil
}

// Resolve returns the entry for id, or a fallback display entry when the
// reference dangles (e.g. the category was deleted after expenses were
// recorded against it). Dangling references are tolerated, never an error.
func (s *RegistryService) Resolve(ctx context.Context, id string) domain.RegistryEntry {
	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return domain.RegistryEntry{ID: id, Name: "Unknown"}
	}
	return entry
}

// Slugify derives a registry identifier from a display name: lowercase,
// with internal whitespace runs replaced by single hyphens.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
