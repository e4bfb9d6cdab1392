package artifact

import (
	"fmt"
	"time"
)

// Artifact filename grammar. Dates are ISO YYYY-MM-DD; the grades artifact
// carries a full timestamp because it can be produced repeatedly per period.

func InventoryFilename(businessDate time.Time) string {
	return fmt.Sprintf("Inventory_%s.csv", businessDate.Format("2006-01-02"))
}

func WithUnitsFilename(location string) string {
	return fmt.Sprintf("%s_with_units.csv", location)
}

func SalesCombinedFilename() string {
	return "Sales_by_Day_combined.csv"
}

func DailyReportFilename(from, to time.Time) string {
	return fmt.Sprintf("Report_%s_to_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func GradesFilename(at time.Time) string {
	return fmt.Sprintf("employee_grades_%s.csv", at.Format("20060102_150405"))
}

func UsageFilename(from, to time.Time) string {
	return fmt.Sprintf("Usage_%s_to_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
}

func BudgetSummaryFilename() string {
	return "Budget_Summary.xlsx"
}

func BudgetComparisonFilename() string {
	return "Budget_vs_Actual.csv"
}

func ValidationReportFilename(artifactName string) string {
	return fmt.Sprintf("validation_%s", artifactName)
}
