package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundMoney rounds to 2 decimal places, half away from zero, for
// presentation. Internal sums stay at full precision.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatMoney renders a presentation amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return RoundMoney(d).StringFixed(2)
}

// ParseTurnTime converts a "M:SS" or "MM:SS" turn time into seconds.
// Blank and dash sentinels come back as 0.
func ParseTurnTime(s string) (int, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "-", "--", "none", "nan":
		return 0, true
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	return minutes*60 + seconds, true
}

// ReformatEmployeeName turns payroll's "Last, First" into "First Last".
// Anything that is not a two-part comma name passes through untouched.
func ReformatEmployeeName(name string) string {
	parts := strings.Split(name, ",")
	if len(parts) != 2 {
		return name
	}
	return fmt.Sprintf("%s %s", strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0]))
}

// UniqueSlice returns xs with duplicates removed, first occurrence wins.
func UniqueSlice[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}
