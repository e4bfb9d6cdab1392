package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/budget"
	"github.com/bighouseburgers/ops_backend/classify"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
)

func main() {
	pnlPath := flag.String("pnl", "", "Annual profit-and-loss spreadsheet, .xlsx (required)")
	sheetName := flag.String("sheet", "", "Worksheet name (defaults to the first sheet)")
	headerRow := flag.Int("header-row", -1, "Zero-based header row index, -1 to auto-detect")
	actualsPath := flag.String("actuals", "", "Optional CSV of actual expenses: Name, Amount")
	flag.Parse()

	if *pnlPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadRunConfig()
	report := &models.ValidationReport{}

	t, err := loader.LoadSpreadsheet(*pnlPath, *sheetName, *headerRow)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load P&L sheet: %v\n", err)
		os.Exit(1)
	}

	importer := &budget.PnLImporter{Classifier: classify.New(config.DefaultCategoryRules())}
	budgets, totals := importer.Import(t, report)
	if len(budgets) == 0 {
		fmt.Fprintln(os.Stderr, "no vendor rows found in the P&L sheet")
		os.Exit(1)
	}

	writer := artifact.NewWriter(cfg)
	var paths []string
	rowCount := len(totals)
	columnCount := 2

	summary, detail := summarySheets(budgets, totals)
	summaryName := artifact.BudgetSummaryFilename()
	summaryPath, err := writer.WriteXLSX(summaryName, summary, detail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", summaryName, err)
		os.Exit(1)
	}
	paths = append(paths, summaryPath)

	if *actualsPath != "" {
		actuals, err := loadActuals(*actualsPath, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load actuals: %v\n", err)
			os.Exit(1)
		}
		variances := budget.Compare(budgets, actuals)
		compHeader := []string{"Vendor", "Category", "Budgeted", "Actual", "Variance", "Variance %", "Status", "Matched By"}
		compRows := make([][]string, 0, len(variances))
		for _, v := range variances {
			compRows = append(compRows, []string{
				v.VendorName, v.Category,
				utils.FormatMoney(v.Budgeted),
				utils.FormatMoney(v.Actual),
				utils.FormatMoney(v.Variance),
				v.VariancePct,
				string(v.Status),
				v.MatchedBy,
			})
		}
		compPath, err := writer.WriteCSV(artifact.BudgetComparisonFilename(), compHeader, compRows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to write comparison: %v\n", err)
			os.Exit(1)
		}
		paths = append(paths, compPath)
		rowCount = len(variances)
		columnCount = len(compHeader)
	}

	validationPath, err := writer.WriteValidationReport(artifact.ValidationReportFilename("Budget_Summary.csv"), report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write validation report: %v\n", err)
		os.Exit(1)
	}
	if validationPath != "" {
		paths = append(paths, validationPath)
	}
	if err := writer.AppendManifest(rowCount, columnCount, paths); err != nil {
		fmt.Fprintf(os.Stderr, "failed to append manifest: %v\n", err)
		os.Exit(1)
	}
	writer.CleanupBackups()

	fmt.Printf("Wrote %d artifacts (%d vendors, %d issues)\n", len(paths), len(budgets), len(report.Issues))
}

// summarySheets lays out the workbook: the category totals, already sorted
// by total descending, are the primary table; the per-vendor budget detail
// goes on a second sheet.
func summarySheets(budgets []models.BudgetRow, totals []budget.CategoryTotal) (artifact.Sheet, artifact.Sheet) {
	summary := artifact.Sheet{
		Name:   "Budget",
		Header: []string{"Category", "Total"},
		Rows:   make([][]interface{}, 0, len(totals)+2),
	}
	for _, ct := range totals {
		summary.Rows = append(summary.Rows, []interface{}{ct.Category, utils.FormatMoney(ct.Total)})
	}
	summary.Rows = append(summary.Rows, []interface{}{})
	summary.Rows = append(summary.Rows, []interface{}{"Category Rule Set", config.CategoryRuleSetVersion})

	detail := artifact.Sheet{
		Name:   "Vendor Detail",
		Header: []string{"Vendor", "Category", "Annual Expense", "Monthly Budget", "Weekly Budget"},
		Rows:   make([][]interface{}, 0, len(budgets)),
	}
	for _, b := range budgets {
		detail.Rows = append(detail.Rows, []interface{}{
			b.VendorName, b.Category,
			utils.FormatMoney(b.AnnualExpense),
			utils.FormatMoney(b.MonthlyBudget),
			utils.FormatMoney(b.WeeklyBudget),
		})
	}
	return summary, detail
}

func loadActuals(path string, report *models.ValidationReport) ([]models.ActualRow, error) {
	t, err := loader.LoadDelimited(path, "")
	if err != nil {
		return nil, err
	}
	amountCol, ok := loader.FindAmountColumn(t.Header)
	if !ok {
		amountCol = "Amount"
	}
	var actuals []models.ActualRow
	for i := range t.Rows {
		name := t.Get(i, "Name")
		if name == "" {
			continue
		}
		actuals = append(actuals, models.ActualRow{
			VendorName: name,
			Amount:     t.DecimalCell(i, amountCol, report),
		})
	}
	return actuals, nil
}
