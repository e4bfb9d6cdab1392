package models

import "github.com/shopspring/decimal"

// ProductivityRecord is one employee row extracted from the point-of-sale
// productivity PDF for a reporting period.
type ProductivityRecord struct {
	EmployeeName    string          `json:"employee_name"`
	ReportingPeriod string          `json:"reporting_period"`
	Sales           decimal.Decimal `json:"sales"`
	VoidTotal       decimal.Decimal `json:"void_total"`
	HoursWorked     decimal.Decimal `json:"hours_worked" validate:"gte=0"`
	TurnTimeSeconds int             `json:"average_turn_time_seconds"`
	NonCashTipsPct  decimal.Decimal `json:"non_cash_tips_pct" validate:"gte=0,lte=100"`
}
