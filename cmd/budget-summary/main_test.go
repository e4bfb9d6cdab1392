package main

import (
	"testing"

	"github.com/bighouseburgers/ops_backend/budget"
	"github.com/bighouseburgers/ops_backend/models"
	"github.com/shopspring/decimal"
)

func TestSummarySheetsCategoryTableFirst(t *testing.T) {
	budgets := []models.BudgetRow{
		{
			VendorName:    "The Jigger",
			Category:      "Liquor Expense",
			AnnualExpense: decimal.NewFromInt(2600),
			MonthlyBudget: decimal.RequireFromString("216.67"),
			WeeklyBudget:  decimal.NewFromInt(50),
		},
	}
	totals := []budget.CategoryTotal{
		{Category: "Food Expense", Total: decimal.NewFromInt(52000)},
		{Category: "Liquor Expense", Total: decimal.NewFromInt(2600)},
	}

	summary, detail := summarySheets(budgets, totals)

	if summary.Name != "Budget" {
		t.Fatalf("primary sheet = %q, want Budget", summary.Name)
	}
	if len(summary.Header) != 2 || summary.Header[0] != "Category" || summary.Header[1] != "Total" {
		t.Fatalf("summary header = %v, want [Category Total]", summary.Header)
	}
	if got := summary.Rows[0][0]; got != "Food Expense" {
		t.Fatalf("first summary row = %v, want the top category total", got)
	}
	if got := summary.Rows[1][0]; got != "Liquor Expense" {
		t.Fatalf("second summary row = %v, want the next category total", got)
	}
	last := summary.Rows[len(summary.Rows)-1]
	if last[0] != "Category Rule Set" {
		t.Fatalf("trailer row = %v, want the rule set version", last)
	}

	if detail.Name != "Vendor Detail" {
		t.Fatalf("detail sheet = %q, want Vendor Detail", detail.Name)
	}
	if got := detail.Rows[0][0]; got != "The Jigger" {
		t.Fatalf("first detail row = %v, want the vendor", got)
	}
}
