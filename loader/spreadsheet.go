package loader

import (
	"errors"
	"os"
	"strings"

	"github.com/bighouseburgers/ops_backend/models"
	"github.com/xuri/excelize/v2"
)

// headerScanLimit bounds the auto-detection scan.
const headerScanLimit = 25

// headerMarkers are the column names whose presence identifies a header row.
var headerMarkers = []string{"Name", "Type", "Date", "Amount", "Debit"}

// LoadSpreadsheet reads one sheet of an office document. headerRowIndex is
// zero-based; pass a negative value to auto-detect by scanning the first 25
// rows for one carrying two or more of the marker column names.
func LoadSpreadsheet(path string, sheetName string, headerRowIndex int) (Table, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Table{}, &models.SourceNotFoundError{Path: path}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Table{}, err
	}

	if headerRowIndex < 0 {
		headerRowIndex = detectHeaderRow(rows)
		if headerRowIndex < 0 {
			examined := len(rows)
			if examined > headerScanLimit {
				examined = headerScanLimit
			}
			return Table{}, &models.HeaderNotFoundError{Path: path, RowsExamined: examined}
		}
	}
	if headerRowIndex >= len(rows) {
		return Table{}, &models.HeaderNotFoundError{Path: path, RowsExamined: len(rows)}
	}

	return rowsFromRecords(path, rows[headerRowIndex:]), nil
}

func detectHeaderRow(rows [][]string) int {
	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		hits := 0
		for _, cell := range rows[i] {
			cell = strings.TrimSpace(cell)
			for _, marker := range headerMarkers {
				if strings.EqualFold(cell, marker) {
					hits++
					break
				}
			}
		}
		if hits >= 2 {
			return i
		}
	}
	return -1
}

// FindAmountColumn picks the value column of a ledger-style sheet by header
// keyword, the way the P&L export names it.
func FindAmountColumn(header []string) (string, bool) {
	for _, h := range header {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "amount") || strings.Contains(lower, "total") || strings.Contains(lower, "debit") {
			return h, true
		}
	}
	return "", false
}
