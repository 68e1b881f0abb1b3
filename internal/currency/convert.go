// Package currency implements the conversion resolver: a direct, directional
// rate lookup applied to an amount. There is no inverse or multi-hop
// resolution — a rate From→To must exist exactly, or the amount passes
// through unconverted.
package currency

import "github.com/tripledger/tripledger/internal/domain"

// Convert returns amount expressed in the "to" currency.
//
// When from == to the amount is returned unchanged without touching the
// rate table. Otherwise the table is scanned in order and the first record
// matching (from, to) exactly is applied. When no record matches, the raw
// amount is returned unchanged — a silent fallback, not an error: callers
// of Convert cannot distinguish "no conversion needed" from "no rate
// available". Use ConvertDetail where that distinction matters.
func Convert(amount float64, from, to string, rates []domain.ExchangeRate) float64 {
	converted, _ := ConvertDetail(amount, from, to, rates)
	return converted
}

// ConvertDetail behaves like Convert and additionally reports whether a
// rate record was applied. rateApplied is false both for the identity
// short-circuit and for the missing-rate fallback.
func ConvertDetail(amount float64, from, to string, rates []domain.ExchangeRate) (converted float64, rateApplied bool) {
	if from == to {
		return amount, false
	}
	for _, r := range rates {
		if r.From == from && r.To == to {
			return amount * r.Rate, true
		}
	}
	return amount, false
}
