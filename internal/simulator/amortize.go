package simulator

import (
	"InvestSim/internal/model"
	"InvestSim/internal/strategy"
)

// payoffEpsilon is the fraction of the principal below which a residual
// balance left by float rounding counts as paid off.
const payoffEpsilon = 1e-12

func validateLoan(p model.LoanParameters) error {
	if p.Principal <= 0 {
		return invalid("principal", "must be positive, got %.2f", p.Principal)
	}
	if p.MonthlyRate < 0 {
		return invalid("monthly rate", "must not be negative, got %.6f", p.MonthlyRate)
	}
	if p.TermMonths <= 0 {
		return invalid("term", "must be positive, got %d", p.TermMonths)
	}
	if p.ExtraPaymentAmount < 0 {
		return invalid("extra payment", "must not be negative, got %.2f", p.ExtraPaymentAmount)
	}
	for m, on := range p.ExtraPaymentMonths {
		if on && (m < 1 || m > p.TermMonths) {
			return invalid("extra payment month", "%d outside 1..%d", m, p.TermMonths)
		}
	}
	return nil
}

// Amortize builds the schedule for a loan under the given method.
//
// Each month charges interest on the opening balance and lets the method
// price the installment. If that would take the balance below zero the
// installment is clamped so the loan closes exactly, and every later month
// is a zero row.
func Amortize(method strategy.Method, p model.LoanParameters) (model.AmortizationResult, error) {
	if method == nil {
		return model.AmortizationResult{}, invalid("method", "is required")
	}
	if err := validateLoan(p); err != nil {
		return model.AmortizationResult{}, err
	}

	base := method.BasePayment(p)
	res := model.AmortizationResult{
		Method:      method.Kind(),
		BasePayment: base,
		Schedule:    make([]model.AmortizationRecord, 0, p.TermMonths),
		Degenerate:  method.Kind() == model.MethodPrice && p.MonthlyRate == 0,
	}
	tolerance := p.Principal * payoffEpsilon
	balance := p.Principal

	for month := 1; month <= p.TermMonths; month++ {
		if balance <= 0 {
			res.Schedule = append(res.Schedule, model.AmortizationRecord{Month: month})
			continue
		}

		interest := balance * p.MonthlyRate
		extra := 0.0
		if p.HasExtra(month) {
			extra = p.ExtraPaymentAmount
		}

		in := method.Installment(base, interest, extra)
		previous := balance
		balance -= in.Prepaid
		balance -= in.Reduction
		if balance < 0 || (balance > 0 && balance < tolerance) {
			in = method.Payoff(base, previous-extra, interest, extra)
			balance = 0
		}

		res.TotalInterest += interest
		res.TotalPayment += in.Outflow
		if balance == 0 && res.PayoffMonth == 0 {
			res.PayoffMonth = month
		}

		res.Schedule = append(res.Schedule, model.AmortizationRecord{
			Month:            month,
			Interest:         interest,
			Amortization:     in.Amortization,
			Payment:          in.Payment,
			Extra:            extra,
			RemainingBalance: balance,
		})
	}

	return res, nil
}

// AmortizeKind resolves the method by name and amortizes.
func AmortizeKind(kind model.AmortizationMethod, p model.LoanParameters) (model.AmortizationResult, error) {
	method, err := strategy.MethodFor(string(kind))
	if err != nil {
		return model.AmortizationResult{}, invalid("method", "%v", err)
	}
	return Amortize(method, p)
}
