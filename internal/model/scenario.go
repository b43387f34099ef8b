package model

// Scenario is one named annual rate to be compared.
type Scenario struct {
	Name       string
	AnnualRate float64
	Taxable    bool
}

// ScenarioResult pairs a scenario with its simulation outcome.
type ScenarioResult struct {
	Scenario Scenario
	Result   SimulationResult
}

// Comparison is the reduced view over several scenarios.
type Comparison struct {
	Results         []ScenarioResult
	Best            string
	Worst           string
	InvestedCapital float64
}

// Lookup returns the result for a scenario name.
func (c Comparison) Lookup(name string) (ScenarioResult, bool) {
	for _, r := range c.Results {
		if r.Scenario.Name == name {
			return r, true
		}
	}
	return ScenarioResult{}, false
}

// Advantage is how much larger, in percent, the best net yield is than the
// worst one. ok is false when the worst net yield is not positive.
func (c Comparison) Advantage() (pct float64, ok bool) {
	best, found := c.Lookup(c.Best)
	if !found {
		return 0, false
	}
	worst, found := c.Lookup(c.Worst)
	if !found {
		return 0, false
	}
	worstYield := worst.Result.NetBalance - c.InvestedCapital
	if worstYield <= 0 {
		return 0, false
	}
	bestYield := best.Result.NetBalance - c.InvestedCapital
	return (bestYield/worstYield - 1) * 100, true
}
