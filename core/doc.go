// Package core defines the input model shared by every snakegraph package:
// Vertex, Edge, Graph, the adjacency builder and graph validation.
//
// A Graph is a plain value: an ordered vertex list with unique integer IDs,
// an ordered edge list of (Source, Target) pairs and a Directed flag.
// Algorithms never mutate it; they derive their own working state
// (Adjacency, visited sets, assignments) on every call.
//
// Construction:
//
//	g := core.NewGraph(core.WithDirected(false))
//	g.AddVertex(1)
//	g.AddVertex(2)
//	g.AddEdge(1, 2)
//
// or directly as a literal:
//
//	g := &core.Graph{
//		Vertices: []core.Vertex{{ID: 1}, {ID: 2}},
//		Edges:    []core.Edge{{Source: 1, Target: 2}},
//	}
//
// Adjacency:
//
//	BuildAdjacency(g) maps every vertex ID to its neighbor IDs in edge input
//	order. Undirected edges are mirrored, directed edges are recorded only as
//	Source→Target. Parallel edges produce duplicate entries.
//
// Validation:
//
//	Validate(g, opts...) fails fast with *InvalidGraphError for graphs that
//	violate the model: nil graph, duplicate vertex IDs, edges that reference
//	unknown vertices. RejectLoops() and RejectMultiEdges() extend the check to
//	self-loops and parallel edges, which are tolerated by default.
//
// Errors:
//
//	ErrNilGraph         - graph pointer is nil.
//	ErrDuplicateVertex  - two vertices share an ID.
//	ErrUnknownEndpoint  - an edge references a vertex that is not in the graph.
//	ErrSelfLoop         - self-loop under RejectLoops().
//	ErrParallelEdge     - parallel edge under RejectMultiEdges().
//
// Complexity:
//
//	BuildAdjacency: Time O(V+E), Memory O(V+E)
//	Validate:       Time O(V+E), Memory O(V) (+O(E) with RejectMultiEdges)
package core
