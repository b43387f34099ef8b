package simulator

import (
	"errors"
	"math"
	"testing"

	"InvestSim/internal/calculator"
	"InvestSim/internal/model"
	"InvestSim/internal/strategy"
)

func TestSimulateGrowth_ZeroRateIsExactSum(t *testing.T) {
	for n := 1; n <= 120; n++ {
		res, err := SimulateGrowth(model.SimulationParameters{
			InitialAmount: 1000,
			Contribution:  strategy.Fixed{Amount: 100},
			HorizonMonths: n,
		})
		if err != nil {
			t.Fatalf("horizon %d: unexpected error: %v", n, err)
		}
		want := 1000 + 100*float64(n)
		if res.GrossBalance != want {
			t.Fatalf("horizon %d: expected gross %.2f, got %.10f", n, want, res.GrossBalance)
		}
		if res.InvestedCapital != want {
			t.Errorf("horizon %d: expected invested %.2f, got %.10f", n, want, res.InvestedCapital)
		}
		if len(res.Schedule) != n {
			t.Errorf("horizon %d: expected %d records, got %d", n, n, len(res.Schedule))
		}
	}
}

func TestSimulateGrowth_FixedTwelvePercent(t *testing.T) {
	p := model.SimulationParameters{
		InitialAmount:  1000,
		Contribution:   strategy.Fixed{Amount: 100},
		BaseAnnualRate: 0.12,
		HorizonMonths:  12,
	}
	first, err := SimulateGrowth(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1000*1.12 + 100*(0.12/i) for the equivalent monthly rate i
	if math.Abs(first.GrossBalance-2384.6497908353) > 1e-6 {
		t.Errorf("expected gross ~2384.6497908353, got %.10f", first.GrossBalance)
	}
	if first.TaxPaid != 0 || first.NetBalance != first.GrossBalance {
		t.Errorf("untaxed run must not pay tax: %+v", first)
	}

	for i := 0; i < 5; i++ {
		again, _ := SimulateGrowth(p)
		if math.Float64bits(again.GrossBalance) != math.Float64bits(first.GrossBalance) {
			t.Fatalf("run %d not bit-identical: %v vs %v", i, again.GrossBalance, first.GrossBalance)
		}
		for m := range first.Schedule {
			if again.Schedule[m] != first.Schedule[m] {
				t.Fatalf("run %d month %d differs", i, m+1)
			}
		}
	}
}

func TestSimulateGrowth_LedgerColumns(t *testing.T) {
	res, err := SimulateGrowth(model.SimulationParameters{
		InitialAmount:  5000,
		Contribution:   strategy.Linear{Base: 100, Delta: 10},
		BaseAnnualRate: 0.10,
		HorizonMonths:  6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i := calculator.AnnualToMonthly(0.10)
	prev := 5000.0
	capital := 5000.0
	for idx, r := range res.Schedule {
		if r.Month != idx+1 {
			t.Errorf("record %d has month %d", idx, r.Month)
		}
		if r.Interest != prev*i {
			t.Errorf("month %d: interest %.6f, expected %.6f", r.Month, r.Interest, prev*i)
		}
		capital += r.Contribution
		if r.AccumulatedCapital != capital {
			t.Errorf("month %d: capital %.2f, expected %.2f", r.Month, r.AccumulatedCapital, capital)
		}
		prev = r.GrossBalance
	}
	if res.Schedule[5].Contribution != 150 {
		t.Errorf("expected month 6 contribution 150, got %.2f", res.Schedule[5].Contribution)
	}
}

func TestSimulateGrowth_DriftCompounds(t *testing.T) {
	drift := 0.02
	res, err := SimulateGrowth(model.SimulationParameters{
		InitialAmount:    10000,
		Contribution:     strategy.Fixed{Amount: 0},
		BaseAnnualRate:   0.12,
		MonthlyRateDrift: drift,
		HorizonMonths:    3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate := calculator.AnnualToMonthly(0.12)
	balance := 10000.0
	for _, r := range res.Schedule {
		if r.Interest != balance*rate {
			t.Errorf("month %d: interest %.8f, expected %.8f", r.Month, r.Interest, balance*rate)
		}
		balance = r.GrossBalance
		rate *= 1 + drift
	}
}

func TestSimulateGrowth_TaxUsesHoldingBracket(t *testing.T) {
	res, err := SimulateGrowth(model.SimulationParameters{
		InitialAmount:  10000,
		Contribution:   strategy.Fixed{Amount: 500},
		BaseAnnualRate: 0.1375,
		HorizonMonths:  18,
		Taxable:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantTax := (res.GrossBalance - res.InvestedCapital) * 0.175
	if res.TaxPaid != wantTax {
		t.Errorf("expected tax %.6f, got %.6f", wantTax, res.TaxPaid)
	}
	if res.NetBalance != res.GrossBalance-res.TaxPaid {
		t.Errorf("net balance must be gross minus tax")
	}
	if res.NetBalance > res.GrossBalance {
		t.Errorf("net %.2f above gross %.2f", res.NetBalance, res.GrossBalance)
	}
}

func TestSimulateGrowth_NegativeYieldPaysNoTax(t *testing.T) {
	res, err := SimulateGrowth(model.SimulationParameters{
		InitialAmount:  10000,
		Contribution:   strategy.Fixed{Amount: 100},
		BaseAnnualRate: -0.05,
		HorizonMonths:  24,
		Taxable:        true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.GrossBalance >= res.InvestedCapital {
		t.Fatalf("expected a loss, gross %.2f invested %.2f", res.GrossBalance, res.InvestedCapital)
	}
	if res.TaxPaid != 0 || res.NetBalance != res.GrossBalance {
		t.Errorf("loss must not be taxed: tax %.4f", res.TaxPaid)
	}
}

func TestSimulateGrowth_CustomOverrides(t *testing.T) {
	res, err := SimulateGrowth(model.SimulationParameters{
		Contribution:  strategy.Custom{Base: 100, Overrides: map[int]float64{3: 1000}},
		HorizonMonths: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InvestedCapital != 1400 {
		t.Errorf("expected invested 1400, got %.2f", res.InvestedCapital)
	}
	if res.Schedule[2].Contribution != 1100 {
		t.Errorf("expected month 3 contribution 1100, got %.2f", res.Schedule[2].Contribution)
	}
}

func TestSimulateGrowth_Validation(t *testing.T) {
	base := model.SimulationParameters{
		InitialAmount: 100,
		Contribution:  strategy.Fixed{Amount: 10},
		HorizonMonths: 12,
	}
	tests := []struct {
		name   string
		mutate func(p *model.SimulationParameters)
	}{
		{"zero horizon", func(p *model.SimulationParameters) { p.HorizonMonths = 0 }},
		{"negative horizon", func(p *model.SimulationParameters) { p.HorizonMonths = -3 }},
		{"negative initial", func(p *model.SimulationParameters) { p.InitialAmount = -1 }},
		{"nil policy", func(p *model.SimulationParameters) { p.Contribution = nil }},
		{"rate below -100%", func(p *model.SimulationParameters) { p.BaseAnnualRate = -1.5 }},
	}
	for _, tt := range tests {
		p := base
		tt.mutate(&p)
		_, err := SimulateGrowth(p)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", tt.name, err)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field == "" {
			t.Errorf("%s: expected a ValidationError naming the field, got %v", tt.name, err)
		}
	}
}
