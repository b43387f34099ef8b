package collector

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"InvestSim/internal/model"
	"InvestSim/internal/recorder"
)

const (
	// DefaultFallbackSelic is used when neither the source nor the store answer.
	DefaultFallbackSelic = 0.13
	cdiFactor            = 0.9975
	savingsThreshold     = 0.085
	savingsMonthly       = 0.005
	savingsSelicShare    = 0.70
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Selic         float64
	ReferenceDate time.Time
	Err           error
	Calls         int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSelic(_ context.Context) (model.Benchmark, error) {
	m.Calls++
	if m.Err != nil {
		return model.Benchmark{}, m.Err
	}
	return model.Benchmark{Selic: m.Selic, ReferenceDate: m.ReferenceDate, FetchedAt: time.Now()}, nil
}

// Collector resolves benchmark rates: remote source first, then the last
// stored snapshot, then a fixed fallback rate.
type Collector struct {
	Fetcher       Fetcher
	Store         recorder.Store
	FallbackSelic float64
}

// NewCollector creates a new Collector. A nil store disables persistence.
func NewCollector(fetcher Fetcher, store recorder.Store, fallbackSelic float64) *Collector {
	if store == nil {
		store = recorder.NewNoopStore()
	}
	return &Collector{Fetcher: fetcher, Store: store, FallbackSelic: fallbackSelic}
}

// Resolve always returns usable rates; failures are logged and degrade to
// the next source.
func (c *Collector) Resolve(ctx context.Context) model.BenchmarkRates {
	if c.Fetcher != nil {
		b, err := c.Fetcher.FetchSelic(ctx)
		if err == nil {
			if err := c.Store.Save(ctx, b); err != nil {
				log.Printf("[WARN] failed to store selic snapshot: %v", err)
			}
			return Derive(b.Selic, b.ReferenceDate, model.SourceRemote)
		}
		log.Printf("[WARN] %s selic fetch failed: %v", c.Fetcher.Name(), err)
	}

	b, ok, err := c.Store.Latest(ctx)
	switch {
	case err != nil:
		log.Printf("[WARN] failed to read stored selic: %v", err)
	case ok:
		log.Printf("[INFO] using stored selic %.4f fetched %s", b.Selic, b.FetchedAt.Format(time.RFC3339))
		return Derive(b.Selic, b.ReferenceDate, model.SourceStore)
	}

	log.Printf("[WARN] using fallback selic %.4f, reference date unavailable", c.FallbackSelic)
	return Derive(c.FallbackSelic, time.Time{}, model.SourceFallback)
}

// Derive computes CDI and savings rates from an annual Selic rate.
func Derive(selic float64, ref time.Time, source model.RateSource) model.BenchmarkRates {
	return model.BenchmarkRates{
		Selic:         selic,
		CDI:           selic * cdiFactor,
		Savings:       SavingsRate(selic),
		ReferenceDate: ref,
		Source:        source,
	}
}

// SavingsRate is 0.5% a month compounded while the Selic is above 8.5%,
// otherwise 70% of the Selic.
func SavingsRate(selic float64) float64 {
	if selic > savingsThreshold {
		return math.Pow(1+savingsMonthly, 12) - 1
	}
	return selic * savingsSelicShare
}

// DefaultScenarios builds the standard product lineup from the rates.
// Percentages are of the CDI, e.g. 110 for 110%.
func DefaultScenarios(rates model.BenchmarkRates, cdbPercent, lciPercent float64) []model.Scenario {
	return []model.Scenario{
		{Name: "Poupança", AnnualRate: rates.Savings, Taxable: false},
		{Name: fmt.Sprintf("CDB (%.0f%% CDI)", cdbPercent), AnnualRate: rates.CDI * cdbPercent / 100, Taxable: true},
		{Name: fmt.Sprintf("LCI/LCA (%.0f%% CDI)", lciPercent), AnnualRate: rates.CDI * lciPercent / 100, Taxable: false},
		{Name: "Tesouro Selic", AnnualRate: rates.Selic, Taxable: true},
	}
}
