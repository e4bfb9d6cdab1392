package budget

import (
	"testing"

	"github.com/bighouseburgers/ops_backend/models"
	"github.com/shopspring/decimal"
)

func budgetRow(vendor, category string, weekly, monthly int64) models.BudgetRow {
	return models.BudgetRow{
		VendorName:    vendor,
		Category:      category,
		WeeklyBudget:  decimal.NewFromInt(weekly),
		MonthlyBudget: decimal.NewFromInt(monthly),
	}
}

func actualRow(vendor string, amount int64) models.ActualRow {
	return models.ActualRow{VendorName: vendor, Amount: decimal.NewFromInt(amount)}
}

func TestCompareFuzzyMatch(t *testing.T) {
	budgets := []models.BudgetRow{budgetRow("US Foods", "Food Expense", 1000, 4300)}
	actuals := []models.ActualRow{actualRow("US FOODS INC.", 950)}

	out := Compare(budgets, actuals)
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	v := out[0]
	if v.MatchedBy != "fuzzy" {
		t.Fatalf("matched by %q, want fuzzy", v.MatchedBy)
	}
	if v.Status != models.MatchStatusUnder {
		t.Fatalf("status = %s, want Under", v.Status)
	}
	if v.Variance.String() != "-50" {
		t.Fatalf("variance = %s, want -50", v.Variance.String())
	}
	if v.VariancePct != "-5%" {
		t.Fatalf("variance pct = %q, want -5%%", v.VariancePct)
	}
}

func TestCompareExactBeatsFuzzy(t *testing.T) {
	budgets := []models.BudgetRow{budgetRow("US Foods", "Food Expense", 1000, 4300)}
	actuals := []models.ActualRow{
		{VendorName: "US Foods Services", Amount: decimal.NewFromInt(5000)},
		{VendorName: "us foods", Amount: decimal.NewFromInt(1000)},
	}

	out := Compare(budgets, actuals)
	matched := out[0]
	if matched.MatchedBy != "exact" {
		t.Fatalf("matched by %q, want exact over any fuzzy candidate", matched.MatchedBy)
	}
	if matched.Actual.String() != "1000" {
		t.Fatalf("actual = %s, want the exact-name amount", matched.Actual.String())
	}

	// The fuzzy candidate the exact pass skipped surfaces as unbudgeted.
	var leftover *models.VarianceRow
	for i := range out {
		if out[i].Status == models.MatchStatusNoBudget {
			leftover = &out[i]
		}
	}
	if leftover == nil || leftover.VendorName != "US Foods Services" {
		t.Fatalf("expected a No Budget row for the unmatched actual, got %v", out)
	}
}

func TestCompareNoActual(t *testing.T) {
	budgets := []models.BudgetRow{budgetRow("MCM Bread and Sweets", "Food Expense", 200, 860)}

	out := Compare(budgets, nil)
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	v := out[0]
	if v.Status != models.MatchStatusNoActual {
		t.Fatalf("status = %s, want No Actual", v.Status)
	}
	if !v.Actual.IsZero() {
		t.Fatalf("actual = %s, want 0", v.Actual.String())
	}
	if v.Variance.String() != "-200" {
		t.Fatalf("variance = %s, want the full budget missed", v.Variance.String())
	}
}

func TestCompareUtilityUsesMonthlyBudget(t *testing.T) {
	budgets := []models.BudgetRow{budgetRow("Spectrum", "Utility Expense", 50, 220)}
	actuals := []models.ActualRow{actualRow("Spectrum", 220)}

	out := Compare(budgets, actuals)
	v := out[0]
	if v.Budgeted.String() != "220" {
		t.Fatalf("budgeted = %s, want the monthly window for utilities", v.Budgeted.String())
	}
	if v.Status != models.MatchStatusOnTrack {
		t.Fatalf("status = %s, want On Track", v.Status)
	}
}

func TestCompareZeroBudgetVariancePct(t *testing.T) {
	budgets := []models.BudgetRow{budgetRow("New Vendor", "Food Expense", 0, 0)}
	actuals := []models.ActualRow{actualRow("New Vendor", 75)}

	out := Compare(budgets, actuals)
	if out[0].VariancePct != "N/A" {
		t.Fatalf("variance pct = %q, want N/A for a zero budget", out[0].VariancePct)
	}
}

func TestCompareSumsDuplicateActuals(t *testing.T) {
	budgets := []models.BudgetRow{budgetRow("Pepsi Cola", "Food Expense", 300, 1300)}
	actuals := []models.ActualRow{
		actualRow("Pepsi Cola", 100),
		actualRow("pepsi cola", 150),
	}

	out := Compare(budgets, actuals)
	if out[0].Actual.String() != "250" {
		t.Fatalf("actual = %s, want duplicate rows summed", out[0].Actual.String())
	}
}
