package ingest

import (
	"errors"
	"testing"
	"time"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/bighouseburgers/ops_backend/utils"
	"github.com/shopspring/decimal"
)

var testDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

func TestSnapshotRowsDashBecomesZeroAndFlagged(t *testing.T) {
	report := &models.ValidationReport{}
	tab := loader.Table{
		Source: "counts.csv",
		Header: []string{"Product Number", "Unit Inventory"},
		Rows: []loader.Row{
			{"Product Number": "100", "Unit Inventory": "12"},
			{"Product Number": "200", "Unit Inventory": "-"},
			{"Product Number": "300", "Unit Inventory": "??"},
			{"Product Number": "", "Unit Inventory": "5"},
		},
	}

	rows := SnapshotRows(tab, "Kingsville", testDate, report)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3 (blank item dropped)", len(rows))
	}
	if !rows[0].QuantityOnHand.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("counted quantity = %s", rows[0].QuantityOnHand.String())
	}
	if !rows[1].QuantityOnHand.IsZero() || !rows[2].QuantityOnHand.IsZero() {
		t.Fatalf("unreadable counts should be 0: %v", rows)
	}
	if len(report.Issues) != 2 {
		t.Fatalf("issues = %d, want 2", len(report.Issues))
	}
	for _, issue := range report.Issues {
		if issue.Kind != models.IssueUnreadableCount {
			t.Fatalf("issue kind = %s", issue.Kind)
		}
	}
	if report.Issues[0].Value != "-" {
		t.Fatalf("issue value = %q, want the source text recorded", report.Issues[0].Value)
	}
}

func TestInvoiceLinesAliasedColumns(t *testing.T) {
	report := &models.ValidationReport{}
	tab := loader.Table{
		Source: "invoice.csv",
		Header: []string{"Product#", "Item Description", "Qty", "UOM", "Pack Size", "Ext Price"},
		Rows: []loader.Row{
			{"Product#": "3264931", "Item Description": "Ground Beef", "Qty": "3", "UOM": "CS", "Pack Size": "36/1 LB", "Ext Price": "$240.00"},
			{"Product#": "4521007", "Item Description": "Buns", "Qty": "2", "UOM": "ea", "Pack Size": "", "Ext Price": "18.00"},
		},
	}

	lines, err := InvoiceLines(tab, testDate, report)
	if err != nil {
		t.Fatalf("InvoiceLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0].PricingUnit != models.PricingUnitCase {
		t.Fatalf("pricing unit = %s, want CS", lines[0].PricingUnit)
	}
	if lines[0].PackingSize != "36/1 LB" {
		t.Fatalf("packing size = %q", lines[0].PackingSize)
	}
	if !lines[0].ExtendedPrice.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("extended price = %s", lines[0].ExtendedPrice.String())
	}
	if lines[1].PricingUnit != models.PricingUnitEach {
		t.Fatalf("pricing unit = %s, want EA default", lines[1].PricingUnit)
	}
	if lines[1].LineOrdinal != 2 {
		t.Fatalf("line ordinal = %d, want 2", lines[1].LineOrdinal)
	}
}

func TestInvoiceLinesMissingRequiredColumn(t *testing.T) {
	tab := loader.Table{
		Source: "invoice.csv",
		Header: []string{"Description", "Amount"},
		Rows:   []loader.Row{{"Description": "x", "Amount": "1"}},
	}
	if _, err := InvoiceLines(tab, testDate, &models.ValidationReport{}); err == nil {
		t.Fatalf("expected an error for a missing ProductNumber column")
	}
}

func salesTable(area string) loader.Table {
	return loader.Table{
		Source: "shift.csv",
		Header: []string{"Name", "Area", "Cash", "Credit Total", "CC Received", "Voids", "Beer", "Liquor", "Wine", "Food"},
		Rows: []loader.Row{
			{
				"Name": "Garcia, Maria", "Area": area, "Cash": "120.00", "Credit Total": "340.25",
				"CC Received": "330.00", "Voids": "12.00", "Beer": "40", "Liquor": "55", "Wine": "0", "Food": "365.25",
			},
		},
	}
}

func TestDailyLogEntries(t *testing.T) {
	report := &models.ValidationReport{}
	entries, err := DailyLogEntries(salesTable("Bar"), "Kingsville", testDate, models.ShiftNight, report)
	if err != nil {
		t.Fatalf("DailyLogEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Area != models.AreaBar || e.Shift != models.ShiftNight {
		t.Fatalf("entry = %+v", e)
	}
	if e.CreditTotal.String() != "340.25" {
		t.Fatalf("credit total = %s", e.CreditTotal.String())
	}
}

func TestDailyLogEntriesRejectsUnknownArea(t *testing.T) {
	_, err := DailyLogEntries(salesTable("Patio"), "Kingsville", testDate, models.ShiftDay, &models.ValidationReport{})
	if err == nil {
		t.Fatalf("expected rejection for an area outside the closed set")
	}
}

func TestDailyLogEntriesEmptyTable(t *testing.T) {
	tab := loader.Table{Source: "shift.csv", Header: []string{"Name", "Area"}}
	_, err := DailyLogEntries(tab, "Kingsville", testDate, models.ShiftDay, &models.ValidationReport{})
	if !errors.Is(err, utils.ErrorEmptyTable) {
		t.Fatalf("err = %v, want ErrorEmptyTable", err)
	}
}
