package reconcile

import (
	"sort"
	"time"

	"github.com/bighouseburgers/ops_backend/aggregate"
	"github.com/bighouseburgers/ops_backend/catalog"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/shopspring/decimal"
)

// UsageRow is the per-item result of reconciling a date interval.
type UsageRow struct {
	ItemNumber    string
	BeginQty      decimal.Decimal
	ThirdParty    decimal.Decimal
	UnitsReceived decimal.Decimal
	EndQty        decimal.Decimal
	Usage         decimal.Decimal
}

// Reconciler computes per-product usage for closed date intervals at one
// location. The catalog view is read-only for the duration of a call.
type Reconciler struct {
	Location string
	Catalog  *catalog.Catalog
}

// ComputeUsage joins the boundary snapshots with invoice ships in
// [begin, end] and any third-party receipts:
//
//	usage = begin + thirdParty + received - end
//
// Items iterate in sorted order. Negative usage is preserved and flagged; it
// signals a counting error or unrecorded receipts.
func (r *Reconciler) ComputeUsage(
	begin, end time.Time,
	snapshots []models.InventorySnapshot,
	invoices []models.InvoiceLine,
	thirdParty map[string]decimal.Decimal,
	report *models.ValidationReport,
) ([]UsageRow, error) {

	beginSnap, ok := latestAtOrBefore(snapshots, r.Location, begin)
	if !ok {
		return nil, &models.MissingSnapshotError{Location: r.Location, Begin: begin, End: end, Bound: "begin"}
	}
	endSnap, ok := latestAtOrBefore(snapshots, r.Location, end)
	if !ok {
		return nil, &models.MissingSnapshotError{Location: r.Location, Begin: begin, End: end, Bound: "end"}
	}

	received := map[string]decimal.Decimal{}
	for _, line := range invoices {
		if line.InvoiceDate.Before(begin) || line.InvoiceDate.After(end) {
			continue
		}
		product, err := r.Catalog.Get(line.ItemNumber)
		if err != nil {
			report.Addf(models.IssueUnknownProduct, "invoice", line.LineOrdinal, "ProductNumber", line.ItemNumber,
				"invoice line references an item missing from the catalog")
			product = models.Product{ItemNumber: line.ItemNumber, UnitsPerPack: 1}
		}
		units, ok := aggregate.ExpandCases(line, product, report)
		if !ok {
			continue
		}
		received[line.ItemNumber] = received[line.ItemNumber].Add(units)
	}

	items := map[string]struct{}{}
	for item := range beginSnap {
		items[item] = struct{}{}
	}
	for item := range endSnap {
		items[item] = struct{}{}
	}
	for item := range received {
		items[item] = struct{}{}
	}
	ordered := make([]string, 0, len(items))
	for item := range items {
		ordered = append(ordered, item)
	}
	sort.Strings(ordered)

	rows := make([]UsageRow, 0, len(ordered))
	for _, item := range ordered {
		row := UsageRow{
			ItemNumber:    item,
			BeginQty:      beginSnap[item],
			EndQty:        endSnap[item],
			UnitsReceived: received[item],
			ThirdParty:    thirdParty[item],
		}
		row.Usage = row.BeginQty.Add(row.ThirdParty).Add(row.UnitsReceived).Sub(row.EndQty)
		if row.Usage.IsNegative() {
			report.Addf(models.IssueNegativeUsage, r.Location, 0, "Usage", row.Usage.String(),
				"negative usage for %s, counting error or unrecorded receipts", item)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// latestAtOrBefore picks the snapshot row-set with the greatest as-of date
// not after the bound.
func latestAtOrBefore(snapshots []models.InventorySnapshot, location string, bound time.Time) (map[string]decimal.Decimal, bool) {
	var bestDate time.Time
	found := false
	for _, s := range snapshots {
		if s.Location != location || s.AsOfDate.After(bound) {
			continue
		}
		if !found || s.AsOfDate.After(bestDate) {
			bestDate = s.AsOfDate
			found = true
		}
	}
	if !found {
		return nil, false
	}
	set := map[string]decimal.Decimal{}
	for _, s := range snapshots {
		if s.Location == location && s.AsOfDate.Equal(bestDate) {
			set[s.ItemNumber] = s.QuantityOnHand
		}
	}
	return set, true
}
