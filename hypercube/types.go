// Package hypercube defines options, errors and the Embedding result shared
// by the backtracking search and the labeling fast path.
package hypercube

import (
	"context"
	"errors"
	"sort"

	"github.com/katalvlaran/snakegraph/core"
)

// MaxDimension is the largest cube dimension the searches accept (2^20 coordinates).
const MaxDimension = 20

var (
	// ErrNegativeDimension is returned for n < 0.
	ErrNegativeDimension = errors.New("hypercube: negative dimension")

	// ErrDimensionTooLarge is returned for n > MaxDimension.
	ErrDimensionTooLarge = errors.New("hypercube: dimension too large")
)

// Option configures optional behavior of Embed and Label.
type Option func(*Options)

// Options holds configurable parameters for the embedding searches.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Adjacency, if non-nil, is used by Embed instead of building one from
	// the graph. It must have been built by core.BuildAdjacency from the same
	// graph. Label ignores it.
	Adjacency core.Adjacency
}

// DefaultOptions returns Options with a background context and no prebuilt adjacency.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
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

// Embedding maps every vertex of a graph to a distinct n-cube coordinate.
type Embedding struct {
	// Dimension is n.
	Dimension int

	// Coords maps vertex ID → coordinate.
	Coords map[int]Coordinate
}

// Coordinate returns the coordinate assigned to id.
func (e *Embedding) Coordinate(id int) (Coordinate, bool) {
	c, ok := e.Coords[id]
	return c, ok
}

// VertexIDs returns the embedded vertex IDs in ascending order.
func (e *Embedding) VertexIDs() []int {
	ids := make([]int, 0, len(e.Coords))
	for id := range e.Coords {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

func checkDimension(n int) error {
	if n < 0 {
		return ErrNegativeDimension
	}
	if n > MaxDimension {
		return ErrDimensionTooLarge
	}

	return nil
}
