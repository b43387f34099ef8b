package calculator

import "math"

// Direction selects a rate period conversion.
type Direction int

const (
	AnnualToMonthlyDirection Direction = iota
	MonthlyToAnnualDirection
)

func (d Direction) String() string {
	switch d {
	case AnnualToMonthlyDirection:
		return "annual->monthly"
	case MonthlyToAnnualDirection:
		return "monthly->annual"
	default:
		return "unknown"
	}
}

// AnnualToMonthly returns the effective monthly rate equivalent to an annual one.
// Defined for rates >= -1.
func AnnualToMonthly(rateAnnual float64) float64 {
	return math.Pow(1+rateAnnual, 1.0/12) - 1
}

// MonthlyToAnnual returns the effective annual rate equivalent to a monthly one.
func MonthlyToAnnual(rateMonthly float64) float64 {
	return math.Pow(1+rateMonthly, 12) - 1
}

// ConvertRate converts rate in the given direction.
func ConvertRate(rate float64, direction Direction) float64 {
	if direction == MonthlyToAnnualDirection {
		return MonthlyToAnnual(rate)
	}
	return AnnualToMonthly(rate)
}
