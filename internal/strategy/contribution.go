package strategy

import (
	"fmt"
	"math"
	"strings"

	"InvestSim/internal/model"
)

// Fixed deposits the same amount every month.
type Fixed struct {
	Amount float64
}

func (f Fixed) ForMonth(_ int) float64       { return f.Amount }
func (f Fixed) Kind() model.ContributionKind { return model.ContributionFixed }

// Linear grows the deposit by Delta every month, starting at Base.
type Linear struct {
	Base  float64
	Delta float64
}

func (l Linear) ForMonth(month int) float64 {
	return l.Base + l.Delta*float64(month-1)
}

func (l Linear) Kind() model.ContributionKind { return model.ContributionLinear }

// Percentage raises the deposit by AnnualGrowth once every 12 months.
type Percentage struct {
	Base         float64
	AnnualGrowth float64 // decimal, 0.05 = 5% per year
}

func (p Percentage) ForMonth(month int) float64 {
	years := (month - 1) / 12
	return p.Base * math.Pow(1+p.AnnualGrowth, float64(years))
}

func (p Percentage) Kind() model.ContributionKind { return model.ContributionPercentage }

// Custom deposits Base every month plus a per-month extra from Overrides.
type Custom struct {
	Base      float64
	Overrides map[int]float64
}

func (c Custom) ForMonth(month int) float64 {
	return c.Base + c.Overrides[month]
}

func (c Custom) Kind() model.ContributionKind { return model.ContributionCustom }

// NewContribution builds a policy by kind name. variation is the linear
// monthly delta or the percentage annual growth, depending on kind.
func NewContribution(kind string, base, variation float64, overrides map[int]float64) (model.ContributionPolicy, error) {
	switch model.ContributionKind(strings.ToUpper(strings.TrimSpace(kind))) {
	case model.ContributionFixed, "":
		return Fixed{Amount: base}, nil
	case model.ContributionLinear:
		return Linear{Base: base, Delta: variation}, nil
	case model.ContributionPercentage:
		return Percentage{Base: base, AnnualGrowth: variation}, nil
	case model.ContributionCustom:
		if overrides == nil {
			overrides = map[int]float64{}
		}
		return Custom{Base: base, Overrides: overrides}, nil
	default:
		return nil, fmt.Errorf("unknown contribution kind %q", kind)
	}
}
