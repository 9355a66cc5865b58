// Package fake implements a dataset generator that records the requests it
// receives instead of generating anything. It backs dry runs and tests.
package fake

import (
	"context"
	"sync"

	"go.viam.com/planargen/datagen"
	"go.viam.com/planargen/logging"
)

// Generator is a fake dataset generator.
type Generator struct {
	// GenerateFunc, when set, runs after a request is recorded. Tests use it
	// to inject behavior.
	GenerateFunc func(ctx context.Context, req *datagen.Request) error

	mu       sync.Mutex
	requests []*datagen.Request
	logger   logging.Logger
}

// NewGenerator returns a generator that only records and logs requests.
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate validates and records the request without producing a dataset.
func (g *Generator) Generate(ctx context.Context, req *datagen.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()

	if g.logger != nil {
		g.logger.Infow("pretending to generate a dataset",
			"run_id", req.ID,
			"scene", req.SceneName,
			"obstacles", len(req.Obstacles),
			"points", req.NumPoints,
		)
	}
	if g.GenerateFunc != nil {
		return g.GenerateFunc(ctx, req)
	}
	return nil
}

// Requests returns the recorded requests in arrival order.
func (g *Generator) Requests() []*datagen.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	requests := make([]*datagen.Request, len(g.requests))
	copy(requests, g.requests)
	return requests
}
