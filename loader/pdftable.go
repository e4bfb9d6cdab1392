package loader

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/bighouseburgers/ops_backend/models"
	"github.com/ledongthuc/pdf"
)

const (
	// Fragments within this vertical distance belong to the same line.
	rowTolerance = 2.0
	// A horizontal gap wider than this starts a new cell.
	cellGap = 3.5
)

// ExtractPDFTables reconstructs one table per page from the text layer of a
// productivity export. Rows are rebuilt from glyph positions: fragments on
// the same baseline form a line, gaps split the line into cells.
func ExtractPDFTables(path string) ([]Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, &models.SourceNotFoundError{Path: path}
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var tables []Table
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		records := reconstructRows(page.Content().Text)
		if len(records) < 2 {
			continue
		}
		records[0] = normalizeHeader(records[0])
		tables = append(tables, rowsFromRecords(path, records))
	}
	return tables, nil
}

// SelectTable returns the first table whose header intersects the expected
// header set. Matching is a case-insensitive substring test either way.
func SelectTable(tables []Table, expectedHeaders []string) (Table, bool) {
	for _, t := range tables {
		for _, h := range t.Header {
			for _, want := range expectedHeaders {
				if headerMatches(h, want) {
					return t, true
				}
			}
		}
	}
	return Table{}, false
}

func headerMatches(have, want string) bool {
	have = strings.ToLower(strings.TrimSpace(have))
	want = strings.ToLower(strings.TrimSpace(want))
	if have == "" || want == "" {
		return false
	}
	return strings.Contains(have, want) || strings.Contains(want, have)
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.ReplaceAll(h, "\n", " ")
		out[i] = strings.Join(strings.Fields(h), " ")
	}
	return out
}

func reconstructRows(texts []pdf.Text) [][]string {
	if len(texts) == 0 {
		return nil
	}
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]string
	var line []pdf.Text
	lineY := sorted[0].Y
	flush := func() {
		if len(line) > 0 {
			rows = append(rows, splitCells(line))
			line = nil
		}
	}
	for _, t := range sorted {
		if lineY-t.Y > rowTolerance {
			flush()
			lineY = t.Y
		}
		line = append(line, t)
	}
	flush()
	return rows
}

func splitCells(line []pdf.Text) []string {
	sort.SliceStable(line, func(i, j int) bool { return line[i].X < line[j].X })

	var cells []string
	var cell strings.Builder
	prevEnd := line[0].X
	for i, t := range line {
		if i > 0 && t.X-prevEnd > cellGap {
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		}
		cell.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	cells = append(cells, strings.TrimSpace(cell.String()))
	return cells
}
