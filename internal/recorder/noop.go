package recorder

import (
	"context"

	"InvestSim/internal/model"
)

// NoopStore is used when no backend is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Save(_ context.Context, _ model.Benchmark) error { return nil }
func (n *NoopStore) Latest(_ context.Context) (model.Benchmark, bool, error) {
	return model.Benchmark{}, false, nil
}
func (n *NoopStore) Close() error { return nil }
