package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/bighouseburgers/ops_backend/loader"
	"github.com/bighouseburgers/ops_backend/models"
)

// Supplier exports are not consistent about column naming; these aliases
// cover the variants seen in the field.
var invoiceAliases = map[string][]string{
	"ProductNumber":      {"ProductNumber", "Product Number", "Product#", "SKU"},
	"ProductDescription": {"ProductDescription", "Product Description", "Description", "Item Description"},
	"QtyShip":            {"QtyShip", "Qty Ship", "Quantity Shipped", "Shipped", "Qty"},
	"PricingUnit":        {"PricingUnit", "Pricing Unit", "Unit", "UOM"},
	"PackingSize":        {"PackingSize", "Packing Size", "Pack Size", "Package Size"},
	"ExtendedPrice":      {"ExtendedPrice", "Extended Price", "Ext Price", "Amount"},
}

var invoiceRequired = []string{"ProductNumber", "QtyShip"}

// InvoiceLines converts a supplier invoice table into lines dated
// invoiceDate. Missing optional columns default; missing required columns
// fail the ingestion.
func InvoiceLines(t loader.Table, invoiceDate time.Time, report *models.ValidationReport) ([]models.InvoiceLine, error) {
	columns := map[string]string{}
	for field, aliases := range invoiceAliases {
		for _, alias := range aliases {
			if t.HasColumn(alias) {
				columns[field] = alias
				break
			}
		}
	}
	for _, field := range invoiceRequired {
		if _, ok := columns[field]; !ok {
			return nil, fmt.Errorf("invoice %s has no %s column (have: %s)",
				t.Source, field, strings.Join(t.Header, ", "))
		}
	}

	var lines []models.InvoiceLine
	for i := range t.Rows {
		itemNumber := strings.TrimSpace(t.Get(i, columns["ProductNumber"]))
		if itemNumber == "" {
			continue
		}
		line := models.InvoiceLine{
			InvoiceDate: invoiceDate,
			ItemNumber:  itemNumber,
			LineOrdinal: i + 1,
			Description: strings.TrimSpace(t.Get(i, columns["ProductDescription"])),
			QtyShip:     t.DecimalCell(i, columns["QtyShip"], report),
			PricingUnit: models.PricingUnitEach,
			PackingSize: strings.TrimSpace(t.Get(i, columns["PackingSize"])),
		}
		if col, ok := columns["ExtendedPrice"]; ok {
			line.ExtendedPrice = t.DecimalCell(i, col, report)
		}
		if unit := strings.ToUpper(strings.TrimSpace(t.Get(i, columns["PricingUnit"]))); unit == string(models.PricingUnitCase) {
			line.PricingUnit = models.PricingUnitCase
		}
		lines = append(lines, line)
	}
	return lines, nil
}
