package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/ingest"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/store"
)

func main() {
	filePath := flag.String("file", "", "Shift close export CSV (required)")
	date := flag.String("date", "", "Business date, YYYY-MM-DD (defaults to today)")
	shift := flag.String("shift", "Day", "Shift, Day or Night")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}
	businessDate := time.Now().Truncate(24 * time.Hour)
	if *date != "" {
		var err error
		businessDate, err = time.Parse("2006-01-02", *date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
			os.Exit(2)
		}
	}
	s := models.Shift(*shift)
	if s != models.ShiftDay && s != models.ShiftNight {
		fmt.Fprintf(os.Stderr, "invalid -shift %q, want Day or Night\n", *shift)
		os.Exit(2)
	}

	cfg := config.LoadRunConfig()
	if err := config.ConnectDatabase(); err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	models.MigrateTable()

	report := &models.ValidationReport{}
	t, err := loader.LoadDelimited(*filePath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load shift export: %v\n", err)
		os.Exit(1)
	}
	entries, err := ingest.DailyLogEntries(t, cfg.Location, businessDate, s, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ingestion rejected: %v\n", err)
		os.Exit(1)
	}

	if err := store.SaveDailyLog(context.Background(), entries); err != nil {
		fmt.Fprintf(os.Stderr, "failed to save daily log: %v\n", err)
		os.Exit(1)
	}

	for _, issue := range report.Issues {
		fmt.Fprintf(os.Stderr, "warning: %s %s row %d: %s\n", issue.Kind, issue.Source, issue.Row, issue.Message)
	}
	fmt.Printf("Saved %d entries for %s %s %s\n", len(entries), cfg.Location, businessDate.Format("2006-01-02"), s)
}
