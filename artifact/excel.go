package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of an XLSX artifact: a header row plus data rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// WriteXLSX writes a workbook with a bold header row per sheet and column
// widths sized to the longest cell plus two. Same backup and rename
// discipline as the CSV artifacts. The first sheet is the active one.
func (w *Writer) WriteXLSX(name string, sheets ...Sheet) (string, error) {
	target := filepath.Join(w.cfg.OutputDir, name)
	if err := w.backupExisting(target); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", err
	}
	for i, sheet := range sheets {
		index, err := f.NewSheet(sheet.Name)
		if err != nil {
			return "", err
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeSheet(f, sheet, boldStyle); err != nil {
			return "", err
		}
	}
	f.DeleteSheet("Sheet1")

	// SaveAs validates the extension, so the temp name keeps the real
	// filename as its suffix.
	tmp, err := os.CreateTemp(w.cfg.OutputDir, ".tmp-*-"+name)
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpName)

	if err := f.SaveAs(tmpName); err != nil {
		return "", err
	}
	if err := os.Rename(tmpName, target); err != nil {
		return "", err
	}
	return target, nil
}

func writeSheet(f *excelize.File, sheet Sheet, boldStyle int) error {
	widths := make([]int, len(sheet.Header))
	for col, h := range sheet.Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet.Name, cell, h)
		widths[col] = len(h)
	}
	for i, row := range sheet.Rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet.Name, cell, value)
			if col < len(widths) {
				if n := len(fmt.Sprint(value)); n > widths[col] {
					widths[col] = n
				}
			}
		}
	}

	lastHeaderCell, _ := excelize.CoordinatesToCellName(len(sheet.Header), 1)
	if err := f.SetCellStyle(sheet.Name, "A1", lastHeaderCell, boldStyle); err != nil {
		return err
	}
	for col, width := range widths {
		colName, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheet.Name, colName, colName, float64(width+2)); err != nil {
			return err
		}
	}
	return nil
}
