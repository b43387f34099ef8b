package calculator

import (
	"math"
	"testing"
)

func TestTaxRate_Boundaries(t *testing.T) {
	tests := []struct {
		months int
		rate   float64
	}{
		{0, 0.225},
		{1, 0.225},
		{6, 0.225},
		{7, 0.20},
		{12, 0.20},
		{13, 0.175},
		{24, 0.175},
		{25, 0.15},
		{360, 0.15},
	}
	for _, tt := range tests {
		if got := TaxRate(tt.months); got != tt.rate {
			t.Errorf("months %d: expected rate %.3f, got %.3f", tt.months, tt.rate, got)
		}
	}
}

func TestComputeTax_ExactAtBoundaries(t *testing.T) {
	y := 12345.67
	tests := []struct {
		months int
		want   float64
	}{
		{6, 0.225 * y},
		{7, 0.20 * y},
		{12, 0.20 * y},
		{13, 0.175 * y},
		{24, 0.175 * y},
		{25, 0.15 * y},
	}
	for _, tt := range tests {
		if got := ComputeTax(tt.months, y); got != tt.want {
			t.Errorf("ComputeTax(%d, %.2f) = %v, want %v", tt.months, y, got, tt.want)
		}
	}
}

func TestComputeTax_NegativeYieldNotFloored(t *testing.T) {
	got := ComputeTax(30, -1000)
	if got != -150 {
		t.Errorf("expected -150 for negative yield, got %.2f", got)
	}
}

func TestRateRoundTrip(t *testing.T) {
	for r := -0.49; r < 5; r += 0.037 {
		back := AnnualToMonthly(MonthlyToAnnual(r))
		if math.Abs(back-r) > 1e-9 {
			t.Errorf("round trip of %.4f drifted to %.12f", r, back)
		}
	}
}

func TestAnnualToMonthly_KnownValues(t *testing.T) {
	// 12% a.a. is roughly 0.9489% a.m.
	got := AnnualToMonthly(0.12)
	if math.Abs(got-0.009488793) > 1e-9 {
		t.Errorf("expected ~0.009488793, got %.9f", got)
	}
	if AnnualToMonthly(0) != 0 {
		t.Error("zero annual rate should map to zero monthly rate")
	}
	// 0.5% a.m. is the savings-account reference, ~6.17% a.a.
	if a := MonthlyToAnnual(0.005); math.Abs(a-0.0616778) > 1e-6 {
		t.Errorf("expected ~0.0616778, got %.7f", a)
	}
}

func TestConvertRate_Direction(t *testing.T) {
	if ConvertRate(0.12, AnnualToMonthlyDirection) != AnnualToMonthly(0.12) {
		t.Error("annual->monthly dispatch mismatch")
	}
	if ConvertRate(0.01, MonthlyToAnnualDirection) != MonthlyToAnnual(0.01) {
		t.Error("monthly->annual dispatch mismatch")
	}
}

func TestConvertPeriod(t *testing.T) {
	tests := []struct {
		name                string
		years, months, days float64
		want                Period
	}{
		{"years win", 2, 5, 10, Period{Years: 2, Months: 24, Days: 730.5}},
		{"months", 0, 18, 0, Period{Years: 1.5, Months: 18, Days: 540}},
		{"days", 0, 0, 90, Period{Years: 0.25, Months: 3, Days: 90}},
		{"empty", 0, 0, 0, Period{}},
	}
	for _, tt := range tests {
		got := ConvertPeriod(tt.years, tt.months, tt.days)
		if got != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, got)
		}
	}
}

func TestTotalMonthsAndDays(t *testing.T) {
	if m := TotalMonths(3, 4); m != 40 {
		t.Errorf("expected 40 months, got %d", m)
	}
	if d := ApproxDays(40); d != 1200 {
		t.Errorf("expected 1200 days, got %d", d)
	}
}
