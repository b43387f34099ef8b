package simulator

import (
	"InvestSim/internal/calculator"
	"InvestSim/internal/model"
)

func validateGrowth(p model.SimulationParameters) error {
	if p.HorizonMonths <= 0 {
		return invalid("horizon", "must be positive, got %d", p.HorizonMonths)
	}
	if p.InitialAmount < 0 {
		return invalid("initial amount", "must not be negative, got %.2f", p.InitialAmount)
	}
	if p.Contribution == nil {
		return invalid("contribution", "policy is required")
	}
	if p.BaseAnnualRate < -1 {
		return invalid("annual rate", "must be >= -100%%, got %.4f", p.BaseAnnualRate)
	}
	return nil
}

// SimulateGrowth projects the balance month by month. Interest accrues on
// the opening balance, then the month's contribution is added.
func SimulateGrowth(p model.SimulationParameters) (model.SimulationResult, error) {
	if err := validateGrowth(p); err != nil {
		return model.SimulationResult{}, err
	}

	balance := p.InitialAmount
	capital := p.InitialAmount
	contributed := 0.0
	monthlyRate := calculator.AnnualToMonthly(p.BaseAnnualRate)
	schedule := make([]model.MonthlyRecord, 0, p.HorizonMonths)

	for month := 1; month <= p.HorizonMonths; month++ {
		contribution := p.Contribution.ForMonth(month)
		interest := balance * monthlyRate

		balance += interest + contribution
		capital += contribution
		contributed += contribution

		schedule = append(schedule, model.MonthlyRecord{
			Month:              month,
			Contribution:       contribution,
			Interest:           interest,
			GrossBalance:       balance,
			AccumulatedCapital: capital,
		})

		monthlyRate *= 1 + p.MonthlyRateDrift
	}

	gross := schedule[len(schedule)-1].GrossBalance
	invested := p.InitialAmount + contributed

	var tax float64
	if p.Taxable {
		// a loss is never refunded
		tax = max(0, calculator.ComputeTax(p.HorizonMonths, gross-invested))
	}

	return model.SimulationResult{
		GrossBalance:    gross,
		InvestedCapital: invested,
		TaxPaid:         tax,
		NetBalance:      gross - tax,
		Schedule:        schedule,
	}, nil
}
