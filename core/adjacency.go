// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: derive the neighbor map from a Graph's edge list.

package core

// Adjacency maps a vertex ID to its neighbor IDs in edge input order.
type Adjacency map[int][]int

// BuildAdjacency converts g's edge list into an Adjacency.
//
// Implementation:
//   - Stage 1: seed an empty (non-nil) list for every vertex, so isolated
//     vertices and directed sinks are present with no neighbors.
//   - Stage 2: for each edge (u,v) append v to u; if g is undirected, also
//     append u to v.
//
// Behavior highlights:
//   - Parallel edges yield duplicate entries; a self-loop in an undirected
//     graph yields two entries of the vertex itself.
//   - Endpoints missing from g.Vertices still get an entry; run Validate first
//     to reject such graphs.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func BuildAdjacency(g *Graph) Adjacency {
	adj := make(Adjacency, len(g.Vertices))
	for _, v := range g.Vertices {
		if _, ok := adj[v.ID]; !ok {
			adj[v.ID] = []int{}
		}
	}

	for _, e := range g.Edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		if !g.Directed {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}

	return adj
}

// Neighbors returns the neighbor list of id, or nil if id has no entry.
// The returned slice is shared with the map; callers must not modify it.
func (a Adjacency) Neighbors(id int) []int {
	return a[id]
}
