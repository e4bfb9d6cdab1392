package aggregate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/shopspring/decimal"
)

// GroupSum groups rows by the key fields and emits one row per distinct key
// with component-wise sums over the sum fields. Keys appear in first-seen
// order. Inputs are never mutated.
func GroupSum(t loader.Table, keyFields, sumFields []string, report *models.ValidationReport) loader.Table {
	type group struct {
		key  loader.Row
		sums []decimal.Decimal
	}

	var order []string
	groups := map[string]*group{}

	for i := range t.Rows {
		parts := make([]string, len(keyFields))
		for j, k := range keyFields {
			parts[j] = t.Get(i, k)
		}
		key := strings.Join(parts, "\x1f")

		g, ok := groups[key]
		if !ok {
			g = &group{key: loader.Row{}, sums: make([]decimal.Decimal, len(sumFields))}
			for _, k := range keyFields {
				g.key[k] = t.Get(i, k)
			}
			groups[key] = g
			order = append(order, key)
		}
		for j, col := range sumFields {
			g.sums[j] = g.sums[j].Add(t.DecimalCell(i, col, report))
		}
	}

	out := loader.Table{Source: t.Source, Header: append(append([]string{}, keyFields...), sumFields...)}
	for _, key := range order {
		g := groups[key]
		row := loader.Row{}
		for _, k := range keyFields {
			row[k] = g.key[k]
		}
		for j, col := range sumFields {
			row[col] = g.sums[j].String()
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// casePackPattern is the invoice packing-size shape, e.g. "36/1 LB".
var casePackPattern = regexp.MustCompile(`^(\d+)\s*/\s*\d+(\.\d+)?\s*[A-Za-z]+`)

// ParsePackCount extracts the case pack count N from "N/X UNIT".
func ParsePackCount(packingSize string) (int, bool) {
	m := casePackPattern.FindStringSubmatch(strings.TrimSpace(packingSize))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// ExpandCases converts a shipped line into base units. Case-priced lines
// multiply by the pack count from the packing size; each-priced lines pass
// through. When the line's own packing size will not parse, the catalog
// product's package size is tried next; a case line with neither is
// excluded from the expanded total and reported, but the caller keeps its
// raw form.
func ExpandCases(line models.InvoiceLine, product models.Product, report *models.ValidationReport) (decimal.Decimal, bool) {
	if line.PricingUnit != models.PricingUnitCase {
		return line.QtyShip, true
	}
	n, ok := ParsePackCount(line.PackingSize)
	if !ok {
		n, ok = ParsePackCount(product.PackageSize)
	}
	if !ok {
		if report != nil {
			report.Addf(models.IssuePackingSize, "invoice", line.LineOrdinal, "PackingSize", line.PackingSize,
				"case line for %s has no parseable pack count, excluded from expanded total", line.ItemNumber)
		}
		return decimal.Zero, false
	}
	return line.QtyShip.Mul(decimal.NewFromInt(int64(n))), true
}

// SortBy stably sorts a copy of the table with a caller-supplied comparator.
// Ties keep their original order.
func SortBy(t loader.Table, less func(a, b loader.Row) bool) loader.Table {
	out := loader.Table{Source: t.Source, Header: append([]string{}, t.Header...)}
	out.Rows = append(out.Rows, t.Rows...)
	sort.SliceStable(out.Rows, func(i, j int) bool { return less(out.Rows[i], out.Rows[j]) })
	return out
}

// SortByColumns is the common comparator: lexicographic over the named
// columns in order.
func SortByColumns(t loader.Table, columns ...string) loader.Table {
	return SortBy(t, func(a, b loader.Row) bool {
		for _, c := range columns {
			if a[c] != b[c] {
				return a[c] < b[c]
			}
		}
		return false
	})
}
