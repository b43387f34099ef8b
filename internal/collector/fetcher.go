package collector

import (
	"context"

	"InvestSim/internal/model"
)

// Fetcher retrieves the current Selic rate from a remote source.
type Fetcher interface {
	FetchSelic(ctx context.Context) (model.Benchmark, error)
	Name() string
}
