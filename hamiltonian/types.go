// Package hamiltonian defines options and results for the Hamiltonian path
// search, including cancellation and a prebuilt adjacency shortcut.
package hamiltonian

import (
	"context"

	"github.com/katalvlaran/snakegraph/core"
)

// Option configures optional behavior of FindPath and HasPath.
type Option func(*Options)

// Options holds configurable parameters for the Hamiltonian search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search with ctx.Err().
	Ctx context.Context

	// Adjacency, if non-nil, is used instead of building one from the graph.
	// It must have been built by core.BuildAdjacency from the same graph.
	Adjacency core.Adjacency
}

// DefaultOptions returns Options with a background context and no prebuilt adjacency.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Adjacency: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAdjacency returns an Option that reuses an adjacency map built by the caller.
func WithAdjacency(adj core.Adjacency) Option {
	return func(o *Options) {
		o.Adjacency = adj
	}
}

// Result captures the outcome of a Hamiltonian path search.
type Result struct {
	// Found reports whether a Hamiltonian path exists.
	Found bool

	// Path lists vertex IDs in visiting order when Found; nil otherwise.
	Path []int

	// Expanded counts DFS entries across all start vertices (diagnostics).
	Expanded int
}
