// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, GraphOption and the NewGraph constructor.
// Policy:
//   - Graph is a value owned by the caller; no package in this module mutates it.
//   - Vertex and edge order is significant and preserved exactly as given.

package core

// Vertex represents a node in the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID int
}

// Edge represents a connection between two vertices.
//
// For directed graphs the edge runs Source→Target; for undirected graphs the
// two endpoints are interchangeable.
type Edge struct {
	// Source is the origin vertex ID.
	Source int

	// Target is the destination vertex ID.
	Target int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are one-way (true) or bidirectional (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.Directed = directed }
}

// Graph is the immutable input to every algorithm of this module.
//
// Vertices and Edges keep caller order; algorithms that depend on iteration
// order (start vertex choice, assignment order) use exactly this order.
type Graph struct {
	// Vertices lists the vertices in input order.
	Vertices []Vertex

	// Edges lists the edges in input order.
	Edges []Edge

	// Directed reports whether edges are traversed Source→Target only.
	Directed bool
}

// NewGraph creates an empty Graph. By default the graph is undirected.
// Complexity: O(len(opts))
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		Vertices: make([]Vertex, 0),
		Edges:    make([]Edge, 0),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex appends a vertex with the given ID.
// Duplicates are not rejected here; Validate reports them.
func (g *Graph) AddVertex(id int) {
	g.Vertices = append(g.Vertices, Vertex{ID: id})
}

// AddEdge appends the edge source→target.
// Unknown endpoints are not rejected here; Validate reports them.
func (g *Graph) AddEdge(source, target int) {
	g.Edges = append(g.Edges, Edge{Source: source, Target: target})
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.Vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// VertexIDs returns the vertex IDs in input order as a fresh slice.
func (g *Graph) VertexIDs() []int {
	ids := make([]int, len(g.Vertices))
	for i, v := range g.Vertices {
		ids[i] = v.ID
	}

	return ids
}

// Clone returns a deep copy of g. Mutating the copy never affects g.
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	out := &Graph{
		Vertices: make([]Vertex, len(g.Vertices)),
		Edges:    make([]Edge, len(g.Edges)),
		Directed: g.Directed,
	}
	copy(out.Vertices, g.Vertices)
	copy(out.Edges, g.Edges)

	return out
}

// ReverseVertexOrder returns a deep copy of g whose vertex list is reversed.
// Edges keep their order. Useful to check order independence of verdicts.
func (g *Graph) ReverseVertexOrder() *Graph {
	out := g.Clone()
	n := len(out.Vertices)
	for i := 0; i < n/2; i++ {
		out.Vertices[i], out.Vertices[n-1-i] = out.Vertices[n-1-i], out.Vertices[i]
	}

	return out
}
