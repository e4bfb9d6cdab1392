package ingest

import (
	"strings"
	"time"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
)

// SnapshotRows converts an inventory count export into snapshot rows.
// Unreadable quantities (a literal "-" is common when nobody counted the
// item) become 0 and the source text lands in the report.
func SnapshotRows(t loader.Table, location string, asOfDate time.Time, report *models.ValidationReport) []models.InventorySnapshot {
	var rows []models.InventorySnapshot
	for i := range t.Rows {
		itemNumber := strings.TrimSpace(t.Get(i, "Product Number"))
		if itemNumber == "" {
			continue
		}
		raw := t.Get(i, "Unit Inventory")
		qty, ok := loader.CleanNumeric(raw)
		if !ok || dashSentinel(raw) {
			report.Addf(models.IssueUnreadableCount, t.Source, i+1, "Unit Inventory", raw,
				"count for %s is unreadable, treated as 0", itemNumber)
		}
		rows = append(rows, models.InventorySnapshot{
			Location:       location,
			AsOfDate:       asOfDate,
			ItemNumber:     itemNumber,
			QuantityOnHand: qty,
		})
	}
	return rows
}

// dashSentinel reports the "no reading" placeholders some counts carry.
func dashSentinel(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "-", "--", "none", "nan":
		return true
	}
	return false
}
