package domain

// BudgetStatus classifies how much of a trip's budget has been consumed.
type BudgetStatus string

const (
	BudgetNormal   BudgetStatus = "normal"
	BudgetWarning  BudgetStatus = "warning"
	BudgetCritical BudgetStatus = "critical"
)

// BudgetStats is the per-trip budget roll-up shown in the trip overview.
//
// ProgressPercent is capped at 100 for display; Remaining is computed from
// the uncapped spend, so an over-budget trip shows 100% progress and a
// negative remaining balance at the same time. Negative remaining is a
// meaningful "over budget" state, not an error.
type BudgetStats struct {
	TotalSpent      float64      `json:"total_spent"` // in trip currency
	Remaining       float64      `json:"remaining"`   // may be negative
	ProgressPercent float64      `json:"progress_percent"`
	Status          BudgetStatus `json:"status"`
}
