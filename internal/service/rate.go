package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
	"github.com/tripledger/tripledger/internal/repo"
)

// RateService manages the exchange-rate table. Editing the table never
// touches stored expense conversions; new rates apply only to expenses
// saved afterwards.
type RateService struct {
	rates repo.RateRepo
}

// NewRateService constructs a RateService backed by the provided repo.
func NewRateService(rates repo.RateRepo) *RateService {
	return &RateService{rates: rates}
}

// List returns the full rate table in lookup-precedence order.
func (s *RateService) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RateService.List: %w", err)
	}
	return rates, nil
}

// Create validates and appends a rate to the table. The timestamp defaults
// to now when unset.
func (s *RateService) Create(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	if err := validateRate(&rate); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("service.RateService.Create: %w", err)
	}
	if rate.Timestamp.IsZero() {
		rate.Timestamp = time.Now().UTC()
	}

	created, err := s.rates.Create(ctx, rate)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("service.RateService.Create: %w", err)
	}
	return created, nil
}

// Update overwrites an existing rate record in place. Its position in the
// lookup order is preserved.
func (s *RateService) Update(ctx context.Context, rate domain.ExchangeRate) (domain.ExchangeRate, error) {
	if err := validateRate(&rate); err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("service.RateService.Update: %w", err)
	}

	updated, err := s.rates.Update(ctx, rate)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("service.RateService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a rate record.
func (s *RateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rates.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.RateService.Delete: %w", err)
	}
	return nil
}

// validateRate enforces the rate invariants, normalizing both currency
// codes in place. Identity pairs are rejected: same-currency conversion
// short-circuits before the table is ever consulted, so such a row could
// never take effect.
func validateRate(rate *domain.ExchangeRate) error {
	if err := normalizeCurrency(&rate.From); err != nil {
		return err
	}
	if err := normalizeCurrency(&rate.To); err != nil {
		return err
	}
	if rate.From == rate.To {
		return fmt.Errorf("%w: from and to currencies must differ", domain.ErrValidation)
	}
	if rate.Rate <= 0 {
		return fmt.Errorf("%w: rate must be positive", domain.ErrValidation)
	}
	return nil
}
