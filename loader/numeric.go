package loader

import (
	"regexp"
	"strings"

	"github.com/bighouseburgers/ops_backend/models"
	"github.com/shopspring/decimal"
)

var trailingPointZero = regexp.MustCompile(`^(-?\d+)\.0$`)

// CleanNumeric applies the shared cleanup rules to a raw cell:
// leading $, trailing %, embedded commas and surrounding whitespace are
// stripped; a lone trailing ".0" on an integer is dropped; the usual export
// sentinels collapse to zero. The second result is false when the cell is
// still unparseable after cleanup.
func CleanNumeric(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "", "-", "--", "none", "nan":
		return decimal.Zero, true
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if m := trailingPointZero.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DecimalColumn is the typed view of one column. Unparseable cells are
// recorded on the report and emitted as zero, never dropped.
func (t *Table) DecimalColumn(column string, report *models.ValidationReport) []decimal.Decimal {
	out := make([]decimal.Decimal, len(t.Rows))
	for i, row := range t.Rows {
		d, ok := CleanNumeric(row[column])
		if !ok {
			report.Addf(models.IssueParseFailure, t.Source, i+1, column, row[column],
				"cell is not numeric after cleanup, using 0")
		}
		out[i] = d
	}
	return out
}

// DecimalCell cleans a single cell in place of a full column view.
func (t *Table) DecimalCell(i int, column string, report *models.ValidationReport) decimal.Decimal {
	raw := t.Get(i, column)
	d, ok := CleanNumeric(raw)
	if !ok {
		report.Addf(models.IssueParseFailure, t.Source, i+1, column, raw,
			"cell is not numeric after cleanup, using 0")
	}
	return d
}
