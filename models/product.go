package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry keyed by the vendor item number. The catalog
// owns these rows; pipelines hold read-only views during a computation.
type Product struct {
	ItemNumber   string          `json:"item_number"`
	Description  string          `json:"description"`
	Brand        string          `json:"brand"`
	GroupName    string          `json:"group_name"`
	LineNumber   int             `json:"line_number"`
	PackageSize  string          `json:"package_size"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	UnitsPerPack int             `json:"units_per_pack" validate:"gte=1"`
}

// Stub reports whether this product was fabricated for an invoice line whose
// item number is not in the catalog. The line still flows through reporting.
func (p Product) Stub() bool {
	return p.Description == "" && p.Brand == ""
}

type PricingUnit string

const (
	PricingUnitEach PricingUnit = "EA"
	PricingUnitCase PricingUnit = "CS"
)

// InvoiceLine is one shipped line of a supplier invoice. Immutable once
// ingested.
type InvoiceLine struct {
	InvoiceDate   time.Time       `json:"invoice_date"`
	ItemNumber    string          `json:"item_number"`
	LineOrdinal   int             `json:"line_ordinal"`
	Description   string          `json:"description"`
	QtyShip       decimal.Decimal `json:"qty_ship"`
	PricingUnit   PricingUnit     `json:"pricing_unit" validate:"oneof=EA CS"`
	PackingSize   string          `json:"packing_size"`
	ExtendedPrice decimal.Decimal `json:"extended_price"`
}
