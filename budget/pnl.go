package budget

import (
	"sort"
	"strings"

	"github.com/bighouseburgers/ops_backend/classify"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerYear  = decimal.NewFromInt(52)
)

// CategoryTotal is one line of the budget summary artifact.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// PnLImporter turns the annual profit-and-loss sheet into per-vendor budget
// rows and per-category totals.
type PnLImporter struct {
	Classifier *classify.Classifier
}

// Import groups the P&L by vendor name, classifies each vendor, and derives
// the annual/monthly/weekly budget triple. Budget rows are re-derived from
// scratch on every import.
func (imp *PnLImporter) Import(t loader.Table, report *models.ValidationReport) ([]models.BudgetRow, []CategoryTotal) {
	amountCol, ok := loader.FindAmountColumn(t.Header)
	if !ok && len(t.Header) >= 2 {
		// P&L exports without a labelled amount column keep it second from last.
		amountCol = t.Header[len(t.Header)-2]
	}

	type vendor struct {
		name     string
		category string
		annual   decimal.Decimal
	}
	var order []string
	vendors := map[string]*vendor{}
	categoryTotals := map[string]decimal.Decimal{}
	var categoryOrder []string

	for i := range t.Rows {
		name := strings.TrimSpace(t.Get(i, "Name"))
		typ := strings.TrimSpace(t.Get(i, "Type"))
		if name == "" && typ == "" {
			continue
		}
		amount := t.DecimalCell(i, amountCol, report)
		category := imp.Classifier.Categorize(name, typ)

		key := strings.ToLower(name)
		v, seen := vendors[key]
		if !seen {
			v = &vendor{name: name, category: category}
			vendors[key] = v
			order = append(order, key)
		}
		v.annual = v.annual.Add(amount)

		if _, seen := categoryTotals[category]; !seen {
			categoryOrder = append(categoryOrder, category)
		}
		categoryTotals[category] = categoryTotals[category].Add(amount)
	}

	rows := make([]models.BudgetRow, 0, len(order))
	for _, key := range order {
		v := vendors[key]
		rows = append(rows, models.BudgetRow{
			VendorName:    v.name,
			Category:      v.category,
			AnnualExpense: v.annual,
			MonthlyBudget: utils.RoundMoney(v.annual.Div(monthsPerYear)),
			WeeklyBudget:  utils.RoundMoney(v.annual.Div(weeksPerYear)),
		})
	}

	totals := make([]CategoryTotal, 0, len(categoryOrder))
	for _, c := range categoryOrder {
		totals = append(totals, CategoryTotal{Category: c, Total: utils.RoundMoney(categoryTotals[c])})
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i].Total.GreaterThan(totals[j].Total) })
	return rows, totals
}
