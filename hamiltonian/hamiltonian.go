// Package hamiltonian decides whether a core.Graph admits a Hamiltonian path,
// a path that visits every vertex exactly once along existing edges.
//
// The search is depth-first with backtracking:
//
//   - Start vertices are tried in graph vertex input order; the first start
//     that yields a full path wins.
//   - From the current vertex, neighbors are explored in adjacency order
//     (edge input order); visited vertices are skipped.
//   - On exhausting all neighbors the vertex is unmarked (backtrack).
//
// Directed graphs are traversed Source→Target only. A vertex with no outgoing
// edges has an empty neighbor list, so a search from it succeeds only when
// the graph has a single vertex.
//
// Complexity:
//
//   - Time:   exponential in the worst case (no memoization).
//   - Memory: O(V+E) for the position-indexed adjacency, O(V) for the
//     visited bitset, path and recursion depth.
//
// Errors:
//
//   - *core.InvalidGraphError if g fails core.Validate.
//   - ctx.Err() if the context is cancelled mid-search.
package hamiltonian

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/snakegraph/core"
)

// pathWalker encapsulates state during the search.
// Vertices are addressed by their position in graph input order.
type pathWalker struct {
	opts     Options
	nbrs     [][]int        // position → neighbor positions
	visited  *bitset.BitSet // positions on the current path prefix
	path     []int          // current path prefix (positions)
	total    int            // vertex count
	expanded int            // DFS entries, diagnostics only
}

// HasPath reports whether g has a Hamiltonian path.
// It returns false for a graph with zero vertices.
func HasPath(g *core.Graph, opts ...Option) (bool, error) {
	res, err := FindPath(g, opts...)
	if err != nil {
		return false, err
	}

	return res.Found, nil
}

// FindPath searches g for a Hamiltonian path and returns the first one found
// in deterministic search order.
func FindPath(g *core.Graph, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if err := core.Validate(g); err != nil {
		return nil, err
	}

	// 2. Apply options
	hopts := DefaultOptions()
	for _, fn := range opts {
		fn(&hopts)
	}

	res := &Result{}
	total := g.VertexCount()
	if total == 0 {
		return res, nil
	}

	// 3. Re-key adjacency by vertex position
	adj := hopts.Adjacency
	if adj == nil {
		adj = core.BuildAdjacency(g)
	}
	ids := g.VertexIDs()
	pos := make(map[int]int, total)
	for i, id := range ids {
		pos[id] = i
	}
	nbrs := make([][]int, total)
	for i, id := range ids {
		list := adj.Neighbors(id)
		nbrs[i] = make([]int, 0, len(list))
		for _, nid := range list {
			p, ok := pos[nid]
			if !ok {
				return nil, fmt.Errorf("hamiltonian: adjacency of %d references %d: %w", id, nid, core.ErrUnknownEndpoint)
			}
			nbrs[i] = append(nbrs[i], p)
		}
	}

	w := &pathWalker{
		opts:    hopts,
		nbrs:    nbrs,
		visited: bitset.New(uint(total)),
		path:    make([]int, 0, total),
		total:   total,
	}

	// 4. Try each start vertex in input order
	for start := 0; start < total; start++ {
		w.visited.ClearAll()
		w.path = w.path[:0]

		found, err := w.extend(start)
		res.Expanded = w.expanded
		if err != nil {
			return res, err
		}
		if found {
			res.Found = true
			res.Path = make([]int, len(w.path))
			for i, p := range w.path {
				res.Path[i] = ids[p]
			}

			return res, nil
		}
	}

	return res, nil
}

// extend places v on the path and tries to complete it.
// On failure v is removed again, leaving visited and path as they were.
func (w *pathWalker) extend(v int) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}
	w.expanded++

	w.visited.Set(uint(v))
	w.path = append(w.path, v)
	if len(w.path) == w.total {
		return true, nil
	}

	for _, u := range w.nbrs[v] {
		if w.visited.Test(uint(u)) {
			continue
		}
		found, err := w.extend(u)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}

	// backtrack
	w.visited.Clear(uint(v))
	w.path = w.path[:len(w.path)-1]

	return false, nil
}

// IsHamiltonianPath reports whether path visits every vertex of g exactly
// once using only edges of g (in their stated direction when g is directed).
// It is the acceptance check for paths produced outside this package.
// A graph that fails core.Validate has no Hamiltonian path.
func IsHamiltonianPath(g *core.Graph, path []int) bool {
	if core.Validate(g) != nil || len(path) != g.VertexCount() || len(path) == 0 {
		return false
	}

	members := make(map[int]struct{}, len(g.Vertices))
	for _, v := range g.Vertices {
		members[v.ID] = struct{}{}
	}

	adj := core.BuildAdjacency(g)
	seen := make(map[int]struct{}, len(path))
	for i, id := range path {
		if _, ok := members[id]; !ok {
			return false
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
		if i == 0 {
			continue
		}
		if !contains(adj.Neighbors(path[i-1]), id) {
			return false
		}
	}

	return true
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}

	return false
}
