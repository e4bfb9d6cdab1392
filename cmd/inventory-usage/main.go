package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/catalog"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/ingest"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/reconcile"
	"github.com/bighouseburgers/ops_backend/store"
	"github.com/shopspring/decimal"
)

var filenameDate = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

func main() {
	catalogPath := flag.String("catalog", "", "Full product export CSV (required)")
	snapshotDir := flag.String("snapshots", "", "Directory of dated inventory CSVs (required unless -from-db)")
	fromDB := flag.Bool("from-db", false, "Read snapshots from the database instead of CSV files")
	invoiceDir := flag.String("invoices", "", "Directory of dated supplier invoice CSVs")
	thirdPartyPath := flag.String("third-party", "", "Optional CSV of extra units received: Product Number, Units")
	begin := flag.String("begin", "", "Interval begin, YYYY-MM-DD (required)")
	end := flag.String("end", "", "Interval end, YYYY-MM-DD (required)")
	flag.Parse()

	if *catalogPath == "" || *begin == "" || *end == "" || (*snapshotDir == "" && !*fromDB) {
		flag.Usage()
		os.Exit(2)
	}
	beginDate, err := time.Parse("2006-01-02", *begin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -begin: %v\n", err)
		os.Exit(2)
	}
	endDate, err := time.Parse("2006-01-02", *end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -end: %v\n", err)
		os.Exit(2)
	}

	cfg := config.LoadRunConfig()
	report := &models.ValidationReport{}

	cat := catalog.New()
	catTable, err := loader.LoadDelimited(*catalogPath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	cat.ImportTable(catTable, report)

	var snapshots []models.InventorySnapshot
	if *fromDB {
		if err := config.ConnectDatabase(); err != nil {
			fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
			os.Exit(1)
		}
		snapshots, err = store.SnapshotsThrough(context.Background(), cfg.Location, endDate)
	} else {
		snapshots, err = loadSnapshots(*snapshotDir, cfg.Location, endDate, report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var invoices []models.InvoiceLine
	if *invoiceDir != "" {
		invoices, err = loadInvoices(*invoiceDir, beginDate, endDate, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	thirdParty := map[string]decimal.Decimal{}
	if *thirdPartyPath != "" {
		t, err := loader.LoadDelimited(*thirdPartyPath, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load third-party adjustments: %v\n", err)
			os.Exit(1)
		}
		for i := range t.Rows {
			item := t.Get(i, "Product Number")
			if item == "" {
				continue
			}
			thirdParty[item] = thirdParty[item].Add(t.DecimalCell(i, "Units", report))
		}
	}

	reconciler := &reconcile.Reconciler{Location: cfg.Location, Catalog: cat}
	usage, err := reconciler.ComputeUsage(beginDate, endDate, snapshots, invoices, thirdParty, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage reconciliation failed: %v\n", err)
		os.Exit(1)
	}

	header := []string{"Product Number", "Product Description", "Begin Qty", "Third Party", "Units Received", "End Qty", "Usage"}
	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		description := ""
		if p, err := cat.Get(u.ItemNumber); err == nil {
			description = p.Description
		}
		rows = append(rows, []string{
			u.ItemNumber,
			description,
			u.BeginQty.String(),
			u.ThirdParty.String(),
			u.UnitsReceived.String(),
			u.EndQty.String(),
			u.Usage.String(),
		})
	}

	writer := artifact.NewWriter(cfg)
	name := artifact.UsageFilename(beginDate, endDate)
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

	fmt.Printf("Wrote %s (%d items, %d issues)\n", path, len(rows), len(report.Issues))
}

// loadSnapshots reads every dated inventory file at or before the end bound.
// The file date comes from the filename, Inventory_YYYY-MM-DD.csv.
func loadSnapshots(dir, location string, through time.Time, report *models.ValidationReport) ([]models.InventorySnapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	var all []models.InventorySnapshot
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		m := filenameDate.FindString(entry.Name())
		if m == "" {
			continue
		}
		asOf, err := time.Parse("2006-01-02", m)
		if err != nil || asOf.After(through) {
			continue
		}
		t, err := loader.LoadDelimited(filepath.Join(dir, entry.Name()), "")
		if err != nil {
			return nil, err
		}
		all = append(all, ingest.SnapshotRows(t, location, asOf, report)...)
	}
	return all, nil
}

func loadInvoices(dir string, begin, end time.Time, report *models.ValidationReport) ([]models.InvoiceLine, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	var all []models.InvoiceLine
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		m := filenameDate.FindString(entry.Name())
		if m == "" {
			continue
		}
		invoiceDate, err := time.Parse("2006-01-02", m)
		if err != nil || invoiceDate.Before(begin) || invoiceDate.After(end) {
			continue
		}
		t, err := loader.LoadDelimited(filepath.Join(dir, entry.Name()), "")
		if err != nil {
			return nil, err
		}
		lines, err := ingest.InvoiceLines(t, invoiceDate, report)
		if err != nil {
			return nil, err
		}
		all = append(all, lines...)
	}
	return all, nil
}
