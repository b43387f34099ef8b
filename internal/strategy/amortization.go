package strategy

import (
	"fmt"
	"math"
	"strings"

	"InvestSim/internal/model"
)

// Installment is what a method charges for one month of a live loan.
type Installment struct {
	Amortization float64 // principal column as reported
	Payment      float64 // installment column as reported
	Prepaid      float64 // principal removed before Reduction
	Reduction    float64 // principal removed after Prepaid
	Outflow      float64 // cash counted into the total paid
}

// Method is an amortization schedule rule. The engine owns the loop, the
// balance floor and the zero-fill; a Method only prices each month.
type Method interface {
	Kind() model.AmortizationMethod
	// BasePayment is computed once per loan before month 1.
	BasePayment(p model.LoanParameters) float64
	Installment(base, interest, extra float64) Installment
	// Payoff rebuilds the last installment once amortization has been
	// clamped to the outstanding principal net of this month's extra.
	Payoff(base, amortization, interest, extra float64) Installment
}

// SAC repays principal in equal parts; the installment shrinks with interest.
type SAC struct{}

func (SAC) Kind() model.AmortizationMethod { return model.MethodSAC }

func (SAC) BasePayment(p model.LoanParameters) float64 {
	return p.Principal / float64(p.TermMonths)
}

func (SAC) Installment(base, interest, extra float64) Installment {
	amort := base + extra
	payment := amort + interest
	return Installment{Amortization: amort, Payment: payment, Reduction: amort, Outflow: payment}
}

func (SAC) Payoff(_, amortization, interest, _ float64) Installment {
	payment := amortization + interest
	return Installment{Amortization: amortization, Payment: payment, Outflow: payment}
}

// Price charges a constant installment; the principal share grows over time.
type Price struct{}

func (Price) Kind() model.AmortizationMethod { return model.MethodPrice }

// BasePayment is the annuity installment. A zero rate makes the formula
// 0/0 and yields 0, leaving the balance untouched unless extras are paid.
func (Price) BasePayment(p model.LoanParameters) float64 {
	r := p.MonthlyRate
	if r == 0 {
		return 0
	}
	f := math.Pow(1+r, float64(p.TermMonths))
	return p.Principal * (f * r) / (f - 1)
}

func (Price) Installment(base, interest, extra float64) Installment {
	amort := base - interest
	return Installment{Amortization: amort, Payment: base, Prepaid: extra, Reduction: amort, Outflow: base + extra}
}

func (Price) Payoff(base, amortization, _, extra float64) Installment {
	return Installment{Amortization: amortization, Payment: base, Outflow: base + extra}
}

// MethodFor resolves a method by its kind name (case-insensitive).
func MethodFor(kind string) (Method, error) {
	switch model.AmortizationMethod(strings.ToUpper(strings.TrimSpace(kind))) {
	case model.MethodSAC:
		return SAC{}, nil
	case model.MethodPrice:
		return Price{}, nil
	default:
		return nil, fmt.Errorf("unknown amortization method %q", kind)
	}
}
