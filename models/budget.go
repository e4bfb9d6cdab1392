package models

import "github.com/shopspring/decimal"

// BudgetRow is a per-vendor budget derived from the annual P&L. Re-derived
// on each import.
type BudgetRow struct {
	VendorName    string          `json:"vendor_name"`
	Category      string          `json:"category"`
	AnnualExpense decimal.Decimal `json:"annual_expense"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	WeeklyBudget  decimal.Decimal `json:"weekly_budget"`
}

// ActualRow is one vendor's actual spend over the comparison window.
type ActualRow struct {
	VendorName string          `json:"vendor_name"`
	Amount     decimal.Decimal `json:"amount"`
}

type MatchStatus string

const (
	MatchStatusOver     MatchStatus = "Over"
	MatchStatusUnder    MatchStatus = "Under"
	MatchStatusOnTrack  MatchStatus = "On Track"
	MatchStatusNoActual MatchStatus = "No Actual"
	MatchStatusNoBudget MatchStatus = "No Budget"
)

// VarianceRow is one budget-vs-actual comparison result.
type VarianceRow struct {
	VendorName  string          `json:"vendor_name"`
	Category    string          `json:"category"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Actual      decimal.Decimal `json:"actual"`
	Variance    decimal.Decimal `json:"variance"`
	VariancePct string          `json:"variance_pct"` // "N/A" when budgeted is zero
	Status      MatchStatus     `json:"status"`
	MatchedBy   string          `json:"matched_by"` // "exact", "fuzzy", or ""
}
