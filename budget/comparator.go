package budget

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bighouseburgers/ops_backend/models"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"github.com/shopspring/decimal"
)

// fuzzyThreshold is the minimum token-set ratio for a fuzzy vendor match.
const fuzzyThreshold = 90

// Compare matches each budget row to an actual-expense row and emits a
// variance row per budget entry, followed by a "No Budget" row for every
// actual no budget claimed. Exact case-insensitive name matches always win;
// fuzzy matching only sees the actuals left over after the exact pass.
func Compare(budgets []models.BudgetRow, actuals []models.ActualRow) []models.VarianceRow {
	remaining := make(map[string]models.ActualRow, len(actuals))
	var remainingOrder []string
	for _, a := range actuals {
		key := strings.ToLower(strings.TrimSpace(a.VendorName))
		if _, dup := remaining[key]; !dup {
			remainingOrder = append(remainingOrder, key)
		}
		cur := remaining[key]
		cur.VendorName = a.VendorName
		cur.Amount = cur.Amount.Add(a.Amount)
		remaining[key] = cur
	}
	take := func(key string) models.ActualRow {
		a := remaining[key]
		delete(remaining, key)
		return a
	}

	var out []models.VarianceRow
	for _, b := range budgets {
		budgeted := budgetSide(b)
		exactKey := strings.ToLower(strings.TrimSpace(b.VendorName))

		if _, ok := remaining[exactKey]; ok {
			out = append(out, varianceFor(b, budgeted, take(exactKey), "exact"))
			continue
		}

		if key, ok := bestFuzzyCandidate(b.VendorName, remaining); ok {
			out = append(out, varianceFor(b, budgeted, take(key), "fuzzy"))
			continue
		}

		out = append(out, models.VarianceRow{
			VendorName:  b.VendorName,
			Category:    b.Category,
			Budgeted:    budgeted,
			Actual:      decimal.Zero,
			Variance:    budgeted.Neg(),
			VariancePct: variancePct(budgeted.Neg(), budgeted),
			Status:      models.MatchStatusNoActual,
		})
	}

	for _, key := range remainingOrder {
		a, ok := remaining[key]
		if !ok {
			continue
		}
		out = append(out, models.VarianceRow{
			VendorName:  a.VendorName,
			Actual:      a.Amount,
			Variance:    a.Amount,
			VariancePct: "N/A",
			Status:      models.MatchStatusNoBudget,
		})
	}
	return out
}

// budgetSide picks the comparison window for the category: utilities bill
// monthly, everything else is budgeted weekly.
func budgetSide(b models.BudgetRow) decimal.Decimal {
	if strings.Contains(strings.ToLower(b.Category), "utility") {
		return b.MonthlyBudget
	}
	return b.WeeklyBudget
}

func bestFuzzyCandidate(vendorName string, remaining map[string]models.ActualRow) (string, bool) {
	type candidate struct {
		key   string
		score int
	}
	var candidates []candidate
	for key, a := range remaining {
		// Token-set scoring is case-sensitive, but vendor casing varies
		// between the budget sheet and the expense export.
		score := fuzzy.TokenSetRatio(strings.ToLower(vendorName), strings.ToLower(a.VendorName))
		if score >= fuzzyThreshold {
			candidates = append(candidates, candidate{key: key, score: score})
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].key < candidates[j].key
	})
	return candidates[0].key, true
}

func varianceFor(b models.BudgetRow, budgeted decimal.Decimal, a models.ActualRow, matchedBy string) models.VarianceRow {
	variance := a.Amount.Sub(budgeted)
	status := models.MatchStatusOnTrack
	switch {
	case variance.IsPositive():
		status = models.MatchStatusOver
	case variance.IsNegative():
		status = models.MatchStatusUnder
	}
	return models.VarianceRow{
		VendorName:  b.VendorName,
		Category:    b.Category,
		Budgeted:    budgeted,
		Actual:      a.Amount,
		Variance:    variance,
		VariancePct: variancePct(variance, budgeted),
		Status:      status,
		MatchedBy:   matchedBy,
	}
}

func variancePct(variance, budgeted decimal.Decimal) string {
	if budgeted.IsZero() {
		return "N/A"
	}
	pct := variance.Div(budgeted).Mul(decimal.NewFromInt(100))
	return fmt.Sprintf("%s%%", pct.Round(1).String())
}
