package models

import "fmt"

type IssueKind string

const (
	IssueParseFailure    IssueKind = "ParseFailure"
	IssueUnknownProduct  IssueKind = "UnknownProduct"
	IssueNegativeUsage   IssueKind = "NegativeUsage"
	IssuePackingSize     IssueKind = "UnparseablePackingSize"
	IssueZeroHours       IssueKind = "ZeroHoursWorked"
	IssueUnreadableCount IssueKind = "UnreadableInventoryCount"
)

// Issue is a non-fatal, value-level problem observed during a run.
type Issue struct {
	Kind    IssueKind
	Source  string
	Row     int
	Column  string
	Value   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s row=%d col=%s value=%q: %s", i.Kind, i.Source, i.Row, i.Column, i.Value, i.Message)
}

// ValidationReport collects issues across a run. The zero value is usable.
type ValidationReport struct {
	Issues []Issue
}

func (r *ValidationReport) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

func (r *ValidationReport) Addf(kind IssueKind, source string, row int, column, value, format string, args ...any) {
	r.Add(Issue{
		Kind:    kind,
		Source:  source,
		Row:     row,
		Column:  column,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

func (r *ValidationReport) HasIssues() bool {
	return len(r.Issues) > 0
}

// Merge appends all of other's issues onto r.
func (r *ValidationReport) Merge(other *ValidationReport) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}
