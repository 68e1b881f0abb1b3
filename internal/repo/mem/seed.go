package mem

import (
	"time"

	"github.com/google/uuid"

	"github.com/tripledger/tripledger/internal/domain"
)

// SeedRates returns the static mock exchange-rate table. Rates are
// directional: the presence of USD→EUR says nothing about EUR→USD, so both
// directions are listed explicitly where conversion should work both ways.
func SeedRates() []domain.ExchangeRate {
	ts := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	pairs := []struct {
		from, to string
		rate     float64
	}{
		{"USD", "EUR", 0.92},
		{"EUR", "USD", 1.09},
		{"USD", "GBP", 0.79},
		{"GBP", "USD", 1.27},
		{"USD", "JPY", 149.50},
		{"JPY", "USD", 0.0067},
		{"EUR", "GBP", 0.86},
		{"GBP", "EUR", 1.16},
		{"USD", "INR", 83.10},
		{"INR", "USD", 0.012},
	}

	rates := make([]domain.ExchangeRate, len(pairs))
	for i, p := range pairs {
		rates[i] = domain.ExchangeRate{
			ID:        uuid.New(),
			From:      p.from,
			To:        p.to,
			Rate:      p.rate,
			Timestamp: ts,
		}
	}
	return rates
}
