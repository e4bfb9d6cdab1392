package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySnapshot is one counted item at a location on a date. The row-set
// for a (location, date) is replaced wholesale on re-save.
type InventorySnapshot struct {
	ID             int             `gorm:"primary_key" json:"id"`
	Location       string          `gorm:"size:255;index:idx_snapshot,priority:1;not null" json:"location" validate:"required"`
	AsOfDate       time.Time       `gorm:"index:idx_snapshot,priority:2;not null" json:"as_of_date" validate:"required"`
	ItemNumber     string          `gorm:"size:255;index:idx_snapshot,priority:3;not null" json:"item_number" validate:"required"`
	QuantityOnHand decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantity_on_hand" validate:"gte=0"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

// InventoryCountRow is a catalog-joined count line as written to the dated
// inventory artifact.
type InventoryCountRow struct {
	LineNumber         int
	GroupName          string
	ProductNumber      string
	ProductDescription string
	ProductBrand       string
	ProductPackageSize string
	Count              decimal.Decimal
}
