package loader

import (
	"testing"

	"github.com/bighouseburgers/ops_backend/models"
)

func TestCleanNumeric(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"$1,234.50", "1234.5", true},
		{"12%", "12", true},
		{" 7.0 ", "7", true},
		{"-3.0", "-3", true},
		{"0.05", "0.05", true},
		{"", "0", true},
		{"-", "0", true},
		{"--", "0", true},
		{"None", "0", true},
		{"nan", "0", true},
		{"abc", "0", false},
		{"1.2.3", "0", false},
	}
	for _, c := range cases {
		got, ok := CleanNumeric(c.raw)
		if ok != c.ok {
			t.Fatalf("CleanNumeric(%q) ok = %v, want %v", c.raw, ok, c.ok)
		}
		if got.String() != c.want {
			t.Fatalf("CleanNumeric(%q) = %s, want %s", c.raw, got.String(), c.want)
		}
	}
}

func TestDecimalCellRecordsParseFailure(t *testing.T) {
	tab := Table{
		Source: "test.csv",
		Header: []string{"Amount"},
		Rows:   []Row{{"Amount": "garbage"}},
	}
	report := &models.ValidationReport{}

	got := tab.DecimalCell(0, "Amount", report)
	if !got.IsZero() {
		t.Fatalf("unparseable cell = %s, want 0", got.String())
	}
	if len(report.Issues) != 1 {
		t.Fatalf("issues = %d, want 1", len(report.Issues))
	}
	if report.Issues[0].Kind != models.IssueParseFailure {
		t.Fatalf("issue kind = %s, want %s", report.Issues[0].Kind, models.IssueParseFailure)
	}
	if report.Issues[0].Value != "garbage" {
		t.Fatalf("issue value = %q, want the raw cell", report.Issues[0].Value)
	}
}

func TestDecimalColumn(t *testing.T) {
	tab := Table{
		Source: "test.csv",
		Header: []string{"Amount"},
		Rows:   []Row{{"Amount": "$1,000.00"}, {"Amount": "-"}, {"Amount": "oops"}},
	}
	report := &models.ValidationReport{}

	col := tab.DecimalColumn("Amount", report)
	if len(col) != 3 {
		t.Fatalf("column = %d values, want 3", len(col))
	}
	if col[0].String() != "1000" || !col[1].IsZero() || !col[2].IsZero() {
		t.Fatalf("column = %v", col)
	}
	if len(report.Issues) != 1 {
		t.Fatalf("issues = %d, want 1 (dash is a sentinel, not a failure)", len(report.Issues))
	}
}

func TestDetectHeaderRowSkipsPreamble(t *testing.T) {
	rows := [][]string{
		{"Big House Burgers"},
		{"Profit and Loss", ""},
		{""},
		{"Name", "Type", "Amount"},
		{"US Foods", "Vendor", "1200"},
	}
	if got := detectHeaderRow(rows); got != 3 {
		t.Fatalf("detectHeaderRow = %d, want 3", got)
	}
}

func TestDetectHeaderRowNeedsTwoMarkers(t *testing.T) {
	rows := [][]string{
		{"Name only here", "Name"},
		{"nothing"},
	}
	if got := detectHeaderRow(rows); got != -1 {
		t.Fatalf("detectHeaderRow = %d, want -1", got)
	}
}

func TestFindAmountColumn(t *testing.T) {
	header := []string{"Name", "Type", "Debit Amount", "Memo"}
	col, ok := FindAmountColumn(header)
	if !ok || col != "Debit Amount" {
		t.Fatalf("FindAmountColumn = %q, %v", col, ok)
	}
	if _, ok := FindAmountColumn([]string{"Name", "Memo"}); ok {
		t.Fatalf("expected no amount column")
	}
}
