package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundMoneyHalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.005", "2.01"},
		{"-2.005", "-2.01"},
		{"2.004", "2"},
		{"10", "10"},
	}
	for _, c := range cases {
		d, _ := decimal.NewFromString(c.in)
		if got := RoundMoney(d).String(); got != c.want {
			t.Fatalf("RoundMoney(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	d, _ := decimal.NewFromString("1100")
	if got := FormatMoney(d); got != "1100.00" {
		t.Fatalf("FormatMoney = %q, want two decimals", got)
	}
}

func TestParseTurnTime(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2:15", 135, true},
		{"0:45", 45, true},
		{"12:00", 720, true},
		{"", 0, true},
		{"-", 0, true},
		{"--", 0, true},
		{"None", 0, true},
		{"nan", 0, true},
		{"quick", 0, false},
		{"90", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTurnTime(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("ParseTurnTime(%q) = %d, %v; want %d, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestReformatEmployeeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Garcia, Maria", "Maria Garcia"},
		{"Maria Garcia", "Maria Garcia"},
		{"One, Two, Three", "One, Two, Three"},
	}
	for _, c := range cases {
		if got := ReformatEmployeeName(c.in); got != c.want {
			t.Fatalf("ReformatEmployeeName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("UniqueSlice = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("UniqueSlice = %v, want %v", got, want)
		}
	}
}
