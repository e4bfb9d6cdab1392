package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/bighouseburgers/ops_backend/artifact"
	"github.com/bighouseburgers/ops_backend/catalog"
	"github.com/bighouseburgers/ops_backend/config"
	"github.com/bighouseburgers/ops_backend/ingest"
	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/store"
)

func main() {
	catalogPath := flag.String("catalog", "", "Full product export CSV (required)")
	countsPath := flag.String("counts", "", "Counted inventory CSV: Product Number, Unit Inventory (required)")
	date := flag.String("date", "", "Count date, YYYY-MM-DD (defaults to today)")
	saveSnapshot := flag.Bool("save-snapshot", false, "Also replace-save the snapshot into the database")
	flag.Parse()

	if *catalogPath == "" || *countsPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	asOf := time.Now().Truncate(24 * time.Hour)
	if *date != "" {
		var err error
		asOf, err = time.Parse("2006-01-02", *date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
			os.Exit(2)
		}
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

	countTable, err := loader.LoadDelimited(*countsPath, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load counts: %v\n", err)
		os.Exit(1)
	}
	snapshots := ingest.SnapshotRows(countTable, cfg.Location, asOf, report)

	counted := make([]models.InventoryCountRow, 0, len(snapshots))
	for _, s := range snapshots {
		row := models.InventoryCountRow{ProductNumber: s.ItemNumber, Count: s.QuantityOnHand}
		p, err := cat.Get(s.ItemNumber)
		if err != nil {
			report.Addf(models.IssueUnknownProduct, countTable.Source, 0, "Product Number", s.ItemNumber,
				"counted item is missing from the catalog")
		} else {
			row.LineNumber = p.LineNumber
			row.GroupName = p.GroupName
			row.ProductDescription = p.Description
			row.ProductBrand = p.Brand
			row.ProductPackageSize = p.PackageSize
		}
		counted = append(counted, row)
	}
	sort.SliceStable(counted, func(i, j int) bool {
		if counted[i].LineNumber != counted[j].LineNumber {
			return counted[i].LineNumber < counted[j].LineNumber
		}
		return counted[i].ProductNumber < counted[j].ProductNumber
	})

	header := []string{"Line Number", "Group Name", "Product Number", "Product Description", "Product Brand", "Product Package Size", "Count"}
	rows := make([][]string, 0, len(counted))
	for _, c := range counted {
		rows = append(rows, []string{
			strconv.Itoa(c.LineNumber),
			c.GroupName,
			c.ProductNumber,
			c.ProductDescription,
			c.ProductBrand,
			c.ProductPackageSize,
			c.Count.String(),
		})
	}

	writer := artifact.NewWriter(cfg)
	name := artifact.InventoryFilename(asOf)
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

	if *saveSnapshot {
		if err := config.ConnectDatabase(); err != nil {
			fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
			os.Exit(1)
		}
		models.MigrateTable()
		if err := store.SaveSnapshot(context.Background(), cfg.Location, asOf, snapshots); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save snapshot: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Wrote %s (%d items, %d issues)\n", path, len(rows), len(report.Issues))
}
