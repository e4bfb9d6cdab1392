package grading

import (
	"testing"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
)

func productivityTable(rows []loader.Row) loader.Table {
	return loader.Table{
		Source: "productivity.pdf",
		Header: []string{"Employee", "Sales", "Void Total", "Void %", "Hours Worked", "Average Turn Time", "Non-Cash Tips"},
		Rows:   rows,
	}
}

func TestFromTable(t *testing.T) {
	report := &models.ValidationReport{}
	tab := productivityTable([]loader.Row{
		{
			"Employee": "Garcia, Maria", "Sales": "$3,200.00", "Void Total": "64.00",
			"Void %": "2.0", "Hours Worked": "38.5", "Average Turn Time": "2:15", "Non-Cash Tips": "14.2",
		},
		{
			"Employee": "Total", "Sales": "$3,200.00", "Void Total": "64.00",
			"Void %": "2.0", "Hours Worked": "38.5", "Average Turn Time": "2:15", "Non-Cash Tips": "14.2",
		},
	})

	records := FromTable(tab, "2025-07", report)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1 (summary row dropped)", len(records))
	}
	r := records[0]
	if r.EmployeeName != "Garcia, Maria" {
		t.Fatalf("name = %q", r.EmployeeName)
	}
	if r.Sales.String() != "3200" {
		t.Fatalf("sales = %s, want 3200", r.Sales.String())
	}
	if r.VoidTotal.String() != "64" {
		t.Fatalf("void total = %s, want the Void Total column, not Void %%", r.VoidTotal.String())
	}
	if r.TurnTimeSeconds != 135 {
		t.Fatalf("turn time = %d, want 135", r.TurnTimeSeconds)
	}
	if report.HasIssues() {
		t.Fatalf("unexpected issues: %v", report.Issues)
	}
}

func TestFromTableBadTurnTimeFlagged(t *testing.T) {
	report := &models.ValidationReport{}
	tab := productivityTable([]loader.Row{
		{
			"Employee": "Reyes, Dan", "Sales": "900", "Void Total": "0",
			"Void %": "0", "Hours Worked": "12", "Average Turn Time": "quick", "Non-Cash Tips": "9",
		},
	})

	records := FromTable(tab, "2025-07", report)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].TurnTimeSeconds != 0 {
		t.Fatalf("turn time = %d, want 0 fallback", records[0].TurnTimeSeconds)
	}
	if len(report.Issues) != 1 || report.Issues[0].Kind != models.IssueParseFailure {
		t.Fatalf("expected one ParseFailure issue, got %v", report.Issues)
	}
}

func TestSelectTablePicksEmployeePage(t *testing.T) {
	tables := []loader.Table{
		{Header: []string{"Category", "Total"}},
		{Header: []string{"Employee Name", "Net Sales", "Hours"}},
	}
	got, ok := loader.SelectTable(tables, expectedHeaders)
	if !ok {
		t.Fatalf("expected a matching table")
	}
	if got.Header[0] != "Employee Name" {
		t.Fatalf("selected wrong table: %v", got.Header)
	}
}
