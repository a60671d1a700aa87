package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}
}

func TestStringRoundsToCents(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
	}
	for _, c := range cases {
		m := NewMoneyFromDecimal(stddec.RequireFromString(c.in))
		if got := m.String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
}

func TestPeriodConversions(t *testing.T) {
	if got := NewMoneyFromDecimal(stddec.NewFromInt(1200)).Monthly().String(); got != "100.00" {
		t.Fatalf("Monthly got %s", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-98765.4, "-$98,765.40"},
		{-0.001, "$0.00"},
		{100000, "$100,000.00"},
	}
	for _, c := range cases {
		if got := NewMoneyFromDecimal(stddec.NewFromFloat(c.in)).Format(); got != c.want {
			t.Fatalf("Format(%v) got %s want %s", c.in, got, c.want)
		}
	}
}

func TestPercentHelpers(t *testing.T) {
	if got := FromPercent(stddec.NewFromInt(7)); !got.Equal(stddec.NewFromFloat(0.07)) {
		t.Fatalf("FromPercent got %s", got)
	}
	if got := ToPercent(stddec.NewFromFloat(0.025)); !got.Equal(stddec.NewFromFloat(2.5)) {
		t.Fatalf("ToPercent got %s", got)
	}
	if got := ApplyPercent(stddec.NewFromInt(200), stddec.NewFromInt(15)); !got.Equal(stddec.NewFromInt(230)) {
		t.Fatalf("ApplyPercent got %s", got)
	}
	if got := ApplyPercent(stddec.NewFromInt(200), stddec.NewFromInt(-50)); !got.Equal(stddec.NewFromInt(100)) {
		t.Fatalf("ApplyPercent negative got %s", got)
	}
}

func TestGrowthFactor(t *testing.T) {
	if got := GrowthFactor(stddec.NewFromFloat(0.1), 3); !got.Equal(stddec.NewFromFloat(1.331)) {
		t.Fatalf("GrowthFactor got %s", got)
	}
	if got := GrowthFactor(stddec.NewFromFloat(0.1), 0); !got.Equal(stddec.NewFromInt(1)) {
		t.Fatalf("GrowthFactor zero periods got %s", got)
	}
}
