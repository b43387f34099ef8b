package simulator

import (
	"sync"

	"InvestSim/internal/model"
)

// Compare runs the base parameters once per scenario, each with its own
// annual rate and tax flag and a fixed rate (no drift). Runs are independent
// and execute concurrently; Best and Worst are picked by net balance, the
// earlier scenario winning ties.
func Compare(base model.SimulationParameters, scenarios []model.Scenario) (model.Comparison, error) {
	if len(scenarios) == 0 {
		return model.Comparison{}, invalid("scenarios", "at least one is required")
	}
	seen := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		if sc.Name == "" {
			return model.Comparison{}, invalid("scenario name", "must not be empty")
		}
		if seen[sc.Name] {
			return model.Comparison{}, invalid("scenario name", "duplicate %q", sc.Name)
		}
		seen[sc.Name] = true
	}

	// Validate once up front so every goroutine either succeeds or none run.
	probe := base
	probe.MonthlyRateDrift = 0
	for _, sc := range scenarios {
		probe.BaseAnnualRate = sc.AnnualRate
		if err := validateGrowth(probe); err != nil {
			return model.Comparison{}, err
		}
	}

	results := make([]model.ScenarioResult, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(i int, sc model.Scenario) {
			defer wg.Done()
			p := base
			p.BaseAnnualRate = sc.AnnualRate
			p.MonthlyRateDrift = 0
			p.Taxable = sc.Taxable
			res, err := SimulateGrowth(p)
			results[i] = model.ScenarioResult{Scenario: sc, Result: res}
			errs[i] = err
		}(i, sc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return model.Comparison{}, err
		}
	}

	cmp := model.Comparison{
		Results:         results,
		InvestedCapital: results[0].Result.InvestedCapital,
	}
	best, worst := 0, 0
	for i, r := range results {
		if r.Result.NetBalance > results[best].Result.NetBalance {
			best = i
		}
		if r.Result.NetBalance < results[worst].Result.NetBalance {
			worst = i
		}
	}
	cmp.Best = results[best].Scenario.Name
	cmp.Worst = results[worst].Scenario.Name
	return cmp, nil
}
