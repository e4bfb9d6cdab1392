package grading

import (
	"testing"

	"github.com/bighouseburgers/ops_backend/models"
	"github.com/shopspring/decimal"
)

func record(name string, sales, voids, hours int64, turnSeconds int, tips float64) models.ProductivityRecord {
	return models.ProductivityRecord{
		EmployeeName:    name,
		ReportingPeriod: "2025-07",
		Sales:           decimal.NewFromInt(sales),
		VoidTotal:       decimal.NewFromInt(voids),
		HoursWorked:     decimal.NewFromInt(hours),
		TurnTimeSeconds: turnSeconds,
		NonCashTipsPct:  decimal.NewFromFloat(tips),
	}
}

func TestGradeTwoEmployees(t *testing.T) {
	report := &models.ValidationReport{}
	records := []models.ProductivityRecord{
		record("E1", 4000, 40, 40, 120, 16),
		record("E2", 2000, 200, 20, 180, 5),
	}

	graded := Grade(records, report)
	if len(graded) != 2 {
		t.Fatalf("graded = %d records, want 2", len(graded))
	}
	e1, e2 := graded[0], graded[1]
	if e1.EmployeeName != "E1" {
		t.Fatalf("expected E1 first by composite, got %s", e1.EmployeeName)
	}
	if e1.Composite <= e2.Composite {
		t.Fatalf("E1 composite %f should exceed E2 %f", e1.Composite, e2.Composite)
	}
	if e1.Grade != "A" {
		t.Fatalf("E1 grade = %s, want A (tips boost holds it at the top)", e1.Grade)
	}
	if e2.Grade != "F" {
		t.Fatalf("E2 grade = %s, want F (tips penalty plus high void rate)", e2.Grade)
	}
}

func TestNormalizationBounds(t *testing.T) {
	report := &models.ValidationReport{}
	records := []models.ProductivityRecord{
		record("Low", 1000, 0, 10, 0, 10),
		record("Mid", 2000, 0, 10, 0, 10),
		record("High", 4000, 0, 10, 0, 10),
	}

	graded := Grade(records, report)
	byName := map[string]GradedRecord{}
	for _, g := range graded {
		byName[g.EmployeeName] = g
	}
	if byName["Low"].NormSalesPerHour != 0 {
		t.Fatalf("global min norm = %f, want 0", byName["Low"].NormSalesPerHour)
	}
	if byName["High"].NormSalesPerHour != 1 {
		t.Fatalf("global max norm = %f, want 1", byName["High"].NormSalesPerHour)
	}
	// Hours are identical across the population.
	for _, g := range graded {
		if g.NormHoursWorked != 1 {
			t.Fatalf("degenerate metric norm = %f for %s, want 1", g.NormHoursWorked, g.EmployeeName)
		}
	}
}

func TestAdjustmentsSaturateInsideLetterRange(t *testing.T) {
	if got := promote("A"); got != "A" {
		t.Fatalf("promote(A) = %s, want A", got)
	}
	if got := demote("F"); got != "F" {
		t.Fatalf("demote(F) = %s, want F", got)
	}
	if got := promote("C"); got != "B" {
		t.Fatalf("promote(C) = %s, want B", got)
	}
	if got := demote("B"); got != "C" {
		t.Fatalf("demote(B) = %s, want C", got)
	}
}

func TestVoidAdjustmentTiers(t *testing.T) {
	cases := []struct {
		composite float64
		voidPct   float64
		tips      float64
		want      string
	}{
		// Zero voids promote one letter.
		{0.85, 0, 10, "A"},
		// Acceptable void rate, no change.
		{0.85, 0.01, 10, "B"},
		// Mid tier only demotes the top letters.
		{0.95, 0.05, 10, "B"},
		{0.75, 0.05, 10, "C"},
		// Runaway voids demote everyone.
		{0.65, 0.10, 10, "F"},
	}
	for _, c := range cases {
		g := &GradedRecord{
			ProductivityRecord: models.ProductivityRecord{NonCashTipsPct: decimal.NewFromFloat(c.tips)},
			Composite:          c.composite,
			VoidPct:            c.voidPct,
		}
		if got := assignGrade(g); got != c.want {
			t.Fatalf("assignGrade(composite=%.2f, void=%.2f) = %s, want %s", c.composite, c.voidPct, got, c.want)
		}
	}
}

func TestTipsAdjustmentAppliesBeforeVoids(t *testing.T) {
	// Base B, tips promote to A, then the mid void tier demotes the A back.
	g := &GradedRecord{
		ProductivityRecord: models.ProductivityRecord{NonCashTipsPct: decimal.NewFromInt(20)},
		Composite:          0.85,
		VoidPct:            0.05,
	}
	if got := assignGrade(g); got != "B" {
		t.Fatalf("assignGrade = %s, want B (promoted then demoted)", got)
	}
}

func TestZeroHoursUsesDivisorOneAndFlags(t *testing.T) {
	report := &models.ValidationReport{}
	records := []models.ProductivityRecord{
		record("Ghost", 500, 0, 0, 0, 10),
		record("Solid", 500, 0, 10, 0, 10),
	}
	graded := Grade(records, report)
	byName := map[string]GradedRecord{}
	for _, g := range graded {
		byName[g.EmployeeName] = g
	}
	if byName["Ghost"].SalesPerHour != 500 {
		t.Fatalf("zero-hours sales/hour = %f, want sales over divisor 1", byName["Ghost"].SalesPerHour)
	}
	if len(report.Issues) != 1 || report.Issues[0].Kind != models.IssueZeroHours {
		t.Fatalf("expected one ZeroHoursWorked issue, got %v", report.Issues)
	}
}

func TestGradeEmptyPopulation(t *testing.T) {
	if got := Grade(nil, &models.ValidationReport{}); got != nil {
		t.Fatalf("Grade(nil) = %v, want nil", got)
	}
}
