package simulator

import (
	"InvestSim/internal/calculator"
	"InvestSim/internal/model"
	"InvestSim/internal/strategy"
)

// Financing is a purchase financed with a down payment and an annual rate.
type Financing struct {
	AssetValue         float64
	DownPayment        float64
	AnnualRate         float64
	TermMonths         int
	ExtraPaymentAmount float64
	ExtraPaymentMonths map[int]bool
}

// CompareLoan amortizes the financed amount under SAC and Price.
func CompareLoan(f Financing) (model.LoanComparison, error) {
	if f.DownPayment < 0 {
		return model.LoanComparison{}, invalid("down payment", "must not be negative, got %.2f", f.DownPayment)
	}
	if f.DownPayment >= f.AssetValue {
		return model.LoanComparison{}, invalid("down payment", "%.2f leaves nothing to finance", f.DownPayment)
	}
	if f.AnnualRate < 0 {
		return model.LoanComparison{}, invalid("annual rate", "must not be negative, got %.4f", f.AnnualRate)
	}

	monthly := calculator.AnnualToMonthly(f.AnnualRate)
	p := model.LoanParameters{
		Principal:          f.AssetValue - f.DownPayment,
		MonthlyRate:        monthly,
		TermMonths:         f.TermMonths,
		ExtraPaymentAmount: f.ExtraPaymentAmount,
		ExtraPaymentMonths: f.ExtraPaymentMonths,
	}

	sac, err := Amortize(strategy.SAC{}, p)
	if err != nil {
		return model.LoanComparison{}, err
	}
	price, err := Amortize(strategy.Price{}, p)
	if err != nil {
		return model.LoanComparison{}, err
	}

	return model.LoanComparison{
		AssetValue:  f.AssetValue,
		DownPayment: f.DownPayment,
		Principal:   p.Principal,
		AnnualRate:  f.AnnualRate,
		MonthlyRate: monthly,
		SAC:         sac,
		Price:       price,
	}, nil
}
