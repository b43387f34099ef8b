package model

import "time"

// RateSource tells where a benchmark rate came from.
type RateSource string

const (
	SourceRemote   RateSource = "REMOTE"
	SourceStore    RateSource = "STORE"
	SourceFallback RateSource = "FALLBACK"
)

// Benchmark is a single Selic observation.
type Benchmark struct {
	Selic         float64   `json:"selic"` // annual, decimal
	ReferenceDate time.Time `json:"reference_date"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// BenchmarkRates holds the annual rates derived from the Selic.
type BenchmarkRates struct {
	Selic         float64
	CDI           float64
	Savings       float64
	ReferenceDate time.Time // zero when unavailable
	Source        RateSource
}

// HasDate reports whether the reference date is known.
func (b BenchmarkRates) HasDate() bool {
	return !b.ReferenceDate.IsZero()
}
