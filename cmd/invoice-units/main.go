package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/bighouseburgers/ops_backend/aggregate"
	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/catalog"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/ingest"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
	"github.com/shopspring/decimal"
)

var filenameDate = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

func main() {
	catalogPath := flag.String("catalog", "", "Full product export CSV (required)")
	invoiceDir := flag.String("invoices", "", "Directory of supplier invoice CSVs (required)")
	flag.Parse()

	if *catalogPath == "" || *invoiceDir == "" {
		flag.Usage()
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

	entries, err := os.ReadDir(*invoiceDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list invoices: %v\n", err)
		os.Exit(1)
	}

	type rollup struct {
		itemNumber  string
		description string
		qtyShip     decimal.Decimal
		extended    decimal.Decimal
		unitsPer    int
		units       decimal.Decimal
	}
	totals := map[string]*rollup{}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		path := filepath.Join(*invoiceDir, entry.Name())
		t, err := loader.LoadDelimited(path, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
			os.Exit(1)
		}
		invoiceDate := dateFromFilename(entry.Name())
		lines, err := ingest.InvoiceLines(t, invoiceDate, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		for _, line := range lines {
			product, err := cat.Get(line.ItemNumber)
			if err != nil {
				report.Addf(models.IssueUnknownProduct, path, line.LineOrdinal, "ProductNumber", line.ItemNumber,
					"invoice line references an item missing from the catalog")
				product = models.Product{ItemNumber: line.ItemNumber, UnitsPerPack: 1}
			}
			r, ok := totals[line.ItemNumber]
			if !ok {
				desc := product.Description
				if product.Stub() {
					desc = line.Description
				}
				r = &rollup{itemNumber: line.ItemNumber, description: desc, unitsPer: product.UnitsPerPack}
				totals[line.ItemNumber] = r
			}
			r.qtyShip = r.qtyShip.Add(line.QtyShip)
			r.extended = r.extended.Add(line.ExtendedPrice)
			if units, ok := aggregate.ExpandCases(line, product, report); ok {
				r.units = r.units.Add(units)
			}
		}
	}

	ordered := make([]*rollup, 0, len(totals))
	for _, r := range totals {
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].itemNumber < ordered[j].itemNumber })

	header := []string{"ProductNumber", "ProductDescription", "QtyShip", "ExtendedPrice", "Quantity", "Units"}
	rows := make([][]string, 0, len(ordered))
	for _, r := range ordered {
		rows = append(rows, []string{
			r.itemNumber,
			r.description,
			r.qtyShip.String(),
			utils.FormatMoney(r.extended),
			strconv.Itoa(r.unitsPer),
			r.units.String(),
		})
	}

	writer := artifact.NewWriter(cfg)
	name := artifact.WithUnitsFilename(cfg.Location)
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

	fmt.Printf("Wrote %s (%d products, %d issues)\n", path, len(rows), len(report.Issues))
}

func dateFromFilename(name string) time.Time {
	if m := filenameDate.FindString(name); m != "" {
		if d, err := time.Parse("2006-01-02", m); err == nil {
			return d
		}
	}
	return time.Now()
}
