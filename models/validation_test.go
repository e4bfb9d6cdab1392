package models

import (
	"strings"
	"testing"
)

func TestValidationReportMerge(t *testing.T) {
	a := &ValidationReport{}
	a.Addf(IssueParseFailure, "a.csv", 1, "Amount", "x", "not numeric")

	b := &ValidationReport{}
	b.Addf(IssueUnknownProduct, "b.csv", 2, "ProductNumber", "999", "missing from catalog")

	a.Merge(b)
	a.Merge(nil)
	if len(a.Issues) != 2 {
		t.Fatalf("issues = %d, want 2", len(a.Issues))
	}
	if a.Issues[1].Kind != IssueUnknownProduct {
		t.Fatalf("merged issue kind = %s", a.Issues[1].Kind)
	}
}

func TestIssueString(t *testing.T) {
	issue := Issue{Kind: IssueNegativeUsage, Source: "Kingsville", Row: 3, Column: "Usage", Value: "-2", Message: "counting error"}
	s := issue.String()
	for _, want := range []string{"NegativeUsage", "Kingsville", "-2", "counting error"} {
		if !strings.Contains(s, want) {
			t.Fatalf("Issue.String() = %q, missing %q", s, want)
		}
	}
}
