package grading

import (
	"sort"

	"github.com/bighouseburgers/ops_backend/models"
)

// Metric weights. They sum to 1.
const (
	WeightSalesPerHour = 0.35
	WeightTurnTime     = 0.05
	WeightVoidPct      = 0.20
	WeightHoursWorked  = 0.20
	WeightTipsPct      = 0.20
)

const voidEpsilon = 1e-9

// GradedRecord carries the inputs, derived metrics, normalized scores, the
// weighted composite and the final letter.
type GradedRecord struct {
	models.ProductivityRecord

	SalesPerHour float64
	VoidPct      float64

	NormSalesPerHour float64
	NormTurnTime     float64
	NormVoidPct      float64
	NormHoursWorked  float64
	NormTipsPct      float64

	Composite float64
	Grade     string
}

// Grade ranks the record population and assigns letters. Normalization is
// min-max within the population being graded; composites and grades only
// make sense relative to that set. Output is sorted by composite descending.
func Grade(records []models.ProductivityRecord, report *models.ValidationReport) []GradedRecord {
	if len(records) == 0 {
		return nil
	}

	out := make([]GradedRecord, len(records))
	for i, r := range records {
		hours, _ := r.HoursWorked.Float64()
		sales, _ := r.Sales.Float64()
		voids, _ := r.VoidTotal.Float64()

		divisor := hours
		if divisor == 0 {
			divisor = 1
			report.Addf(models.IssueZeroHours, "productivity", i+1, "Hours Worked", "0",
				"%s has zero hours worked, sales per hour uses divisor 1", r.EmployeeName)
		}
		salesDivisor := sales
		if salesDivisor < voidEpsilon {
			salesDivisor = voidEpsilon
		}

		out[i] = GradedRecord{
			ProductivityRecord: r,
			SalesPerHour:       sales / divisor,
			VoidPct:            voids / salesDivisor,
		}
	}

	normalize(out, func(g *GradedRecord) float64 { return g.SalesPerHour },
		func(g *GradedRecord, v float64) { g.NormSalesPerHour = v }, true)
	normalize(out, func(g *GradedRecord) float64 { return float64(g.TurnTimeSeconds) },
		func(g *GradedRecord, v float64) { g.NormTurnTime = v }, false)
	normalize(out, func(g *GradedRecord) float64 { return g.VoidPct },
		func(g *GradedRecord, v float64) { g.NormVoidPct = v }, false)
	normalize(out, func(g *GradedRecord) float64 { f, _ := g.HoursWorked.Float64(); return f },
		func(g *GradedRecord, v float64) { g.NormHoursWorked = v }, true)
	normalize(out, func(g *GradedRecord) float64 { f, _ := g.NonCashTipsPct.Float64(); return f },
		func(g *GradedRecord, v float64) { g.NormTipsPct = v }, true)

	for i := range out {
		g := &out[i]
		g.Composite = g.NormSalesPerHour*WeightSalesPerHour +
			g.NormTurnTime*WeightTurnTime +
			g.NormVoidPct*WeightVoidPct +
			g.NormHoursWorked*WeightHoursWorked +
			g.NormTipsPct*WeightTipsPct
		g.Grade = assignGrade(g)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Composite > out[j].Composite })
	return out
}

// normalize applies min-max scaling across the population. When every value
// is identical each record scores 1.0. Lower-is-better metrics invert.
func normalize(records []GradedRecord, get func(*GradedRecord) float64, set func(*GradedRecord, float64), higherIsBetter bool) {
	min, max := get(&records[0]), get(&records[0])
	for i := range records {
		v := get(&records[i])
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	for i := range records {
		if max == min {
			set(&records[i], 1.0)
			continue
		}
		scaled := (get(&records[i]) - min) / (max - min)
		if !higherIsBetter {
			scaled = 1.0 - scaled
		}
		set(&records[i], scaled)
	}
}

func baseGrade(composite float64) string {
	switch {
	case composite >= 0.90:
		return "A"
	case composite >= 0.80:
		return "B"
	case composite >= 0.70:
		return "C"
	case composite >= 0.60:
		return "D"
	default:
		return "F"
	}
}

var (
	promotions = map[string]string{"B": "A", "C": "B", "D": "C", "F": "D"}
	demotions  = map[string]string{"A": "B", "B": "C", "C": "D", "D": "F"}
)

func promote(grade string) string {
	if next, ok := promotions[grade]; ok {
		return next
	}
	return grade
}

func demote(grade string) string {
	if next, ok := demotions[grade]; ok {
		return next
	}
	return grade
}

// assignGrade applies the composite ladder, then the tips adjustment, then
// the void adjustment. Each stage moves at most one letter and saturates
// inside A..F.
func assignGrade(g *GradedRecord) string {
	grade := baseGrade(g.Composite)

	tips, _ := g.NonCashTipsPct.Float64()
	switch {
	case tips >= 15:
		grade = promote(grade)
	case tips < 6:
		grade = demote(grade)
	}

	v := g.VoidPct
	switch {
	case v == 0:
		grade = promote(grade)
	case v < 0.02:
		// acceptable void rate, no change
	case v < 0.04:
		if grade == "A" {
			grade = demote(grade)
		}
	case v < 0.06:
		if grade == "A" || grade == "B" {
			grade = demote(grade)
		}
	case v < 0.08:
		if grade == "A" || grade == "B" || grade == "C" {
			grade = demote(grade)
		}
	default:
		grade = demote(grade)
	}

	return grade
}
