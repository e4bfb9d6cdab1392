package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/store"
	"github.com/bighouseburgers/ops_backend/utils"
)

func main() {
	from := flag.String("from", "", "Interval start, YYYY-MM-DD (required)")
	to := flag.String("to", "", "Interval end, YYYY-MM-DD (required)")
	flag.Parse()

	if *from == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}
	fromDate, err := time.Parse("2006-01-02", *from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -from: %v\n", err)
		os.Exit(2)
	}
	toDate, err := time.Parse("2006-01-02", *to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -to: %v\n", err)
		os.Exit(2)
	}

	cfg := config.LoadRunConfig()
	if err := config.ConnectDatabase(); err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	entries, err := store.DailyLogRange(ctx, cfg.Location, fromDate, toDate)
	if errors.Is(err, utils.ErrorRecordNotFound) {
		fmt.Fprintf(os.Stderr, "no daily log entries between %s and %s\n", *from, *to)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to query daily log: %v\n", err)
		os.Exit(1)
	}

	header := []string{"Date", "Shift", "Name", "Area", "Cash", "Credit Total", "CC Received", "Voids", "Beer", "Liquor", "Wine", "Food"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.BusinessDate.Format("2006-01-02"),
			string(e.Shift),
			e.EmployeeName,
			string(e.Area),
			utils.FormatMoney(e.Cash),
			utils.FormatMoney(e.CreditTotal),
			utils.FormatMoney(e.CCReceived),
			utils.FormatMoney(e.Voids),
			utils.FormatMoney(e.Beer),
			utils.FormatMoney(e.Liquor),
			utils.FormatMoney(e.Wine),
			utils.FormatMoney(e.Food),
		})
	}

	writer := artifact.NewWriter(cfg)
	name := artifact.DailyReportFilename(fromDate, toDate)
	path, err := writer.WriteCSV(name, header, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", name, err)
		os.Exit(1)
	}
	if err := writer.AppendManifest(len(rows), len(header), []string{path}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to append manifest: %v\n", err)
		os.Exit(1)
	}
	writer.CleanupBackups()

	fmt.Printf("Wrote %s (%d entries)\n", path, len(rows))
}
