package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
)

func main() {
	dayPath := flag.String("day", "", "Day shift sales export CSV (required)")
	nightPath := flag.String("night", "", "Night shift sales export CSV (required)")
	flag.Parse()

	if *dayPath == "" || *nightPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.LoadRunConfig()
	report := &models.ValidationReport{}

	day, err := loader.LoadDelimited(*dayPath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load day export: %v\n", err)
		os.Exit(1)
	}
	night, err := loader.LoadDelimited(*nightPath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load night export: %v\n", err)
		os.Exit(1)
	}

	// Source columns come through untouched; the Period column marks the
	// shift each row came from.
	header := append(append([]string{}, day.Header...), "Period")
	rows := make([][]string, 0, len(day.Rows)+len(night.Rows))
	rows = append(rows, stamped(day, day.Header, models.ShiftDay.Period())...)
	rows = append(rows, stamped(night, day.Header, models.ShiftNight.Period())...)

	writer := artifact.NewWriter(cfg)
	name := artifact.SalesCombinedFilename()
	path, err := writer.WriteCSV(name, header, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", name, err)
		os.Exit(1)
	}
	validationPath, err := writer.WriteValidationReport(artifact.ValidationReportFilename(name), report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write validation report: %v\n", err)
		os.Exit(1)
	}
	paths := []string{path}
	if validationPath != "" {
		paths = append(paths, validationPath)
	}
	if err := writer.AppendManifest(len(rows), len(header), paths); err != nil {
		fmt.Fprintf(os.Stderr, "failed to append manifest: %v\n", err)
		os.Exit(1)
	}
	writer.CleanupBackups()

	fmt.Printf("Wrote %s (%d rows)\n", path, len(rows))
}

// stamped re-emits a table's rows in the given column order with the period
// marker appended. Columns missing from a source resolve to "".
func stamped(t loader.Table, columns []string, period string) [][]string {
	out := make([][]string, 0, len(t.Rows))
	for i := range t.Rows {
		row := make([]string, 0, len(columns)+1)
		for _, col := range columns {
			row = append(row, t.Get(i, col))
		}
		row = append(row, period)
		out = append(out, row)
	}
	return out
}
