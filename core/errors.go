// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel reasons and the structured InvalidGraphError.
// Policy:
//   - Callers branch with errors.Is(err, ErrX) on the reason and
//     errors.As(err, &*InvalidGraphError) for the offending vertex/edge.
//   - Structural disqualifications (no path, no embedding) are never errors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel reasons carried by InvalidGraphError.
var (
	// ErrNilGraph indicates that a nil *Graph was supplied.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrDuplicateVertex indicates that two vertices share the same ID.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrUnknownEndpoint indicates an edge referencing a vertex that is not in the graph.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not found")

	// ErrSelfLoop indicates a self-loop under RejectLoops().
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrParallelEdge indicates a parallel edge under RejectMultiEdges().
	ErrParallelEdge = errors.New("core: parallel edge not allowed")
)

// noIndex marks InvalidGraphError fields that do not apply.
const noIndex = -1

// InvalidGraphError reports a graph that violates the input model.
//
// Reason is always one of the sentinels above. Vertex holds the offending
// vertex ID when one applies. Edge holds the index into Graph.Edges of the
// offending edge, or -1 when the failure is not tied to an edge.
type InvalidGraphError struct {
	Reason error
	Vertex int
	Edge   int
}

// Error implements the error interface.
func (e *InvalidGraphError) Error() string {
	switch {
	case e.Edge != noIndex:
		return fmt.Sprintf("invalid graph: edge #%d (vertex %d): %v", e.Edge, e.Vertex, e.Reason)
	case errors.Is(e.Reason, ErrNilGraph):
		return fmt.Sprintf("invalid graph: %v", e.Reason)
	default:
		return fmt.Sprintf("invalid graph: vertex %d: %v", e.Vertex, e.Reason)
	}
}

// Unwrap exposes Reason to errors.Is.
func (e *InvalidGraphError) Unwrap() error {
	return e.Reason
}

func vertexError(reason error, id int) *InvalidGraphError {
	return &InvalidGraphError{Reason: reason, Vertex: id, Edge: noIndex}
}

func edgeError(reason error, id, edge int) *InvalidGraphError {
	return &InvalidGraphError{Reason: reason, Vertex: id, Edge: edge}
}
