package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shift string

const (
	ShiftDay   Shift = "Day"
	ShiftNight Shift = "Night"
)

// Period is the single-letter shift marker used by the combined sales
// artifact: M for the morning (Day) shift, N for night.
func (s Shift) Period() string {
	if s == ShiftNight {
		return "N"
	}
	return "M"
}

type Area string

const (
	AreaDining Area = "Dining"
	AreaBar    Area = "Bar"
	AreaToGo   Area = "ToGo"
)

// DailyLogEntry is one employee's shift-close line. Saving a (date, shift)
// replaces all entries for that key.
type DailyLogEntry struct {
	ID           int             `gorm:"primary_key" json:"id"`
	Location     string          `gorm:"size:255;index:idx_dailylog,priority:1;not null" json:"location" validate:"required"`
	BusinessDate time.Time       `gorm:"index:idx_dailylog,priority:2;not null" json:"business_date" validate:"required"`
	Shift        Shift           `gorm:"size:10;index:idx_dailylog,priority:3;not null" json:"shift" validate:"oneof=Day Night"`
	EmployeeName string          `gorm:"size:255;not null" json:"employee_name" validate:"required"`
	Area         Area            `gorm:"size:10;not null" json:"area" validate:"oneof=Dining Bar ToGo"`
	Cash         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cash" validate:"gte=0"`
	CreditTotal  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"credit_total" validate:"gte=0"`
	CCReceived   decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cc_received" validate:"gte=0"`
	Voids        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"voids" validate:"gte=0"`
	Beer         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"beer" validate:"gte=0"`
	Liquor       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"liquor" validate:"gte=0"`
	Wine         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"wine" validate:"gte=0"`
	Food         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"food" validate:"gte=0"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
