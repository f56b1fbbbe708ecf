// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: fail-fast structural validation of a Graph.
// Policy:
//   - Checks run in a fixed order: nil graph, vertices in input order,
//     then edges in input order. The first violation wins.
//   - Self-loops and parallel edges are tolerated unless explicitly rejected.

package core

// ValidateOption tunes Validate.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	rejectLoops bool
	rejectMulti bool
}

// RejectLoops makes Validate report self-loops with ErrSelfLoop.
func RejectLoops() ValidateOption {
	return func(o *validateOptions) { o.rejectLoops = true }
}

// RejectMultiEdges makes Validate report parallel edges with ErrParallelEdge.
// For undirected graphs (u,v) and (v,u) are parallel.
func RejectMultiEdges() ValidateOption {
	return func(o *validateOptions) { o.rejectMulti = true }
}

// Validate checks g against the input model and returns *InvalidGraphError
// on the first violation, or nil.
//
// Implementation:
//   - Stage 1: reject a nil graph (ErrNilGraph).
//   - Stage 2: index vertex IDs, rejecting duplicates (ErrDuplicateVertex).
//   - Stage 3: walk edges, rejecting unknown endpoints (ErrUnknownEndpoint),
//     then optional self-loops and parallel edges.
//
// Complexity:
//   - Time O(V+E), Space O(V) plus O(E) when RejectMultiEdges is set.
func Validate(g *Graph, opts ...ValidateOption) error {
	if g == nil {
		return &InvalidGraphError{Reason: ErrNilGraph, Edge: noIndex}
	}

	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	known := make(map[int]struct{}, len(g.Vertices))
	for _, v := range g.Vertices {
		if _, dup := known[v.ID]; dup {
			return vertexError(ErrDuplicateVertex, v.ID)
		}
		known[v.ID] = struct{}{}
	}

	var seen map[Edge]struct{}
	if o.rejectMulti {
		seen = make(map[Edge]struct{}, len(g.Edges))
	}
	for i, e := range g.Edges {
		if _, ok := known[e.Source]; !ok {
			return edgeError(ErrUnknownEndpoint, e.Source, i)
		}
		if _, ok := known[e.Target]; !ok {
			return edgeError(ErrUnknownEndpoint, e.Target, i)
		}
		if o.rejectLoops && e.Source == e.Target {
			return edgeError(ErrSelfLoop, e.Source, i)
		}
		if o.rejectMulti {
			key := e
			// undirected pairs are keyed by their ordered endpoints
			if !g.Directed && key.Source > key.Target {
				key.Source, key.Target = key.Target, key.Source
			}
			if _, dup := seen[key]; dup {
				return edgeError(ErrParallelEdge, e.Source, i)
			}
			seen[key] = struct{}{}
		}
	}

	return nil
}
