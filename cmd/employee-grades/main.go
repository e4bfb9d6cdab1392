package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/grading"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
)

func main() {
	reportPath := flag.String("report", "", "Point-of-sale productivity export, PDF or CSV (required)")
	period := flag.String("period", "", "Reporting period label, e.g. 2025-07 (defaults to the current month)")
	flag.Parse()

	if *reportPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *period == "" {
		*period = time.Now().Format("2006-01")
	}

	cfg := config.LoadRunConfig()
	report := &models.ValidationReport{}

	var records []models.ProductivityRecord
	var err error
	if strings.EqualFold(filepath.Ext(*reportPath), ".pdf") {
		records, err = grading.ImportPDF(*reportPath, *period, report)
	} else {
		var t loader.Table
		t, err = loader.LoadDelimited(*reportPath, "")
		if err == nil {
			records = grading.FromTable(t, *period, report)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read productivity report: %v\n", err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no employee rows found in the productivity report")
		os.Exit(1)
	}

	graded := grading.Grade(records, report)

	out := [][]string{{
		"Employee", "Sales/Hour", "Turn Time (sec)", "Void %", "Tips %",
		"Hours worked", "Weighted Score", "Grade",
	}}
	for _, g := range graded {
		out = append(out, []string{
			utils.ReformatEmployeeName(g.EmployeeName),
			strconv.FormatFloat(g.SalesPerHour, 'f', 2, 64),
			strconv.Itoa(g.TurnTimeSeconds),
			strconv.FormatFloat(g.VoidPct*100, 'f', 2, 64),
			g.NonCashTipsPct.String(),
			g.HoursWorked.String(),
			strconv.FormatFloat(g.Composite, 'f', 4, 64),
			g.Grade,
		})
	}
	out = append(out, formulaTrailer()...)

	writer := artifact.NewWriter(cfg)
	name := artifact.GradesFilename(time.Now())
	path, err := writer.WriteRawCSV(name, out)
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
	if err := writer.AppendManifest(len(graded), 8, paths); err != nil {
		fmt.Fprintf(os.Stderr, "failed to append manifest: %v\n", err)
		os.Exit(1)
	}
	writer.CleanupBackups()

	fmt.Printf("Wrote %s (%d employees, %d issues)\n", path, len(graded), len(report.Issues))
}

// formulaTrailer appends a human-readable explanation of the score, so a
// manager reading the sheet can see how the letters were produced.
func formulaTrailer() [][]string {
	return [][]string{
		{""},
		{"Score = weighted sum of min-max normalized metrics:"},
		{"", "Sales/Hour", "35%"},
		{"", "Void %", "20%", "lower is better"},
		{"", "Hours Worked", "20%"},
		{"", "Non-Cash Tips %", "20%"},
		{"", "Turn Time", "5%", "lower is better"},
		{"Letters: A >= 0.90, B >= 0.80, C >= 0.70, D >= 0.60, else F."},
		{"Adjustments: tips >= 15% promotes one letter, tips < 6% demotes one."},
		{"Zero voids promote one letter; high void rates demote per tier."},
	}
}
