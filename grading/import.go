package grading

import (
	"strings"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
)

// expectedHeaders identifies the employee table among the PDF's pages.
var expectedHeaders = []string{"Employee", "Sales"}

var columnKeywords = map[string][]string{
	"employee": {"employee", "name", "server"},
	"sales":    {"sales"},
	"voids":    {"void total", "void count", "void"},
	"hours":    {"hours worked", "hours", "hrs"},
	"turn":     {"average turn time", "turn time", "avg turn"},
	"tips":     {"non-cash tips", "non cash tips", "tips %"},
}

// ImportPDF extracts the productivity table and converts it into records.
// Summary and total rows are dropped; value-level parse problems are
// collected, not raised.
func ImportPDF(path, reportingPeriod string, report *models.ValidationReport) ([]models.ProductivityRecord, error) {
	tables, err := loader.ExtractPDFTables(path)
	if err != nil {
		return nil, err
	}
	t, ok := loader.SelectTable(tables, expectedHeaders)
	if !ok {
		return nil, &models.HeaderNotFoundError{Path: path, RowsExamined: len(tables)}
	}
	return FromTable(t, reportingPeriod, report), nil
}

// FromTable maps a reconstructed table onto records using fuzzy header
// matching, the way the point-of-sale names its export columns.
func FromTable(t loader.Table, reportingPeriod string, report *models.ValidationReport) []models.ProductivityRecord {
	employeeCol := findColumn(t.Header, columnKeywords["employee"])
	salesCol := findColumn(t.Header, columnKeywords["sales"])
	voidsCol := findVoidColumn(t.Header)
	hoursCol := findColumn(t.Header, columnKeywords["hours"])
	turnCol := findColumn(t.Header, columnKeywords["turn"])
	tipsCol := findColumn(t.Header, columnKeywords["tips"])

	var records []models.ProductivityRecord
	for i := range t.Rows {
		name := strings.TrimSpace(t.Get(i, employeeCol))
		if name == "" || isSummaryRow(name) {
			continue
		}

		rec := models.ProductivityRecord{
			EmployeeName:    name,
			ReportingPeriod: reportingPeriod,
			Sales:           t.DecimalCell(i, salesCol, report),
			VoidTotal:       t.DecimalCell(i, voidsCol, report),
			HoursWorked:     t.DecimalCell(i, hoursCol, report),
			NonCashTipsPct:  t.DecimalCell(i, tipsCol, report),
		}
		seconds, ok := utils.ParseTurnTime(t.Get(i, turnCol))
		if !ok {
			report.Addf(models.IssueParseFailure, t.Source, i+1, turnCol, t.Get(i, turnCol),
				"turn time is not M:SS, using 0")
		}
		rec.TurnTimeSeconds = seconds
		records = append(records, rec)
	}
	return records
}

func findColumn(header []string, keywords []string) string {
	for _, keyword := range keywords {
		for _, h := range header {
			if strings.Contains(strings.ToLower(h), keyword) {
				return h
			}
		}
	}
	return ""
}

// The void column needs both words present so "Void %" does not shadow
// "Void Total".
func findVoidColumn(header []string) string {
	for _, h := range header {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "void") && strings.Contains(lower, "total") {
			return h
		}
	}
	return findColumn(header, columnKeywords["voids"])
}

func isSummaryRow(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"employee", "total", "average", "summary"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
