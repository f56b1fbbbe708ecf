// Package hypercube decides whether a core.Graph embeds into the n-cube: a
// bijection from vertices to n-bit coordinates under which every edge joins
// two coordinates at Hamming distance exactly 1.
//
// Only declared edges are checked; non-adjacent vertices may land on
// adjacent cube corners.
//
// Embed runs a backtracking assignment:
//
//   - Vertices are assigned in graph input order.
//   - For the current vertex every unused coordinate is tried in ascending
//     index order (natural binary order of Coordinates(n)).
//   - A tentative coordinate is kept only if every already-assigned neighbor
//     (from the adjacency map) sits at Hamming distance 1 (partial check).
//   - A complete assignment is accepted only after every edge of the edge list
//     passes the same test (final validation).
//   - Failures undo the tentative assignment and free the coordinate.
//
// The search keeps its frames on an explicit stack instead of the call stack;
// the order of tried assignments and the first accepted embedding equal the
// recursive formulation.
//
// Complexity:
//
//   - Time:   O((2^n)!) worst case; the partial check prunes most branches.
//   - Memory: O(2^n · n) for coordinates, O(V+E) for adjacency and frames.
//
// Errors:
//
//   - *core.InvalidGraphError if g fails core.Validate.
//   - ErrNegativeDimension, ErrDimensionTooLarge for n out of range.
//   - ctx.Err() if the context is cancelled mid-search.
package hypercube

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/snakegraph/core"
)

// cancelCheckEvery bounds how many frame steps run between context checks.
const cancelCheckEvery = 1024

// unassigned marks a vertex position without a coordinate.
const unassigned = -1

// frame is one level of the backtracking search.
type frame struct {
	pos  int // vertex position being assigned
	next int // next coordinate index to try
	cur  int // coordinate index currently held, or unassigned
}

// assignment is the mutable search state: vertex position → coordinate index,
// plus the set of coordinate indices in use. It stays injective at all times.
type assignment struct {
	coords []Coordinate
	of     []int           // position → coordinate index
	used   *roaring.Bitmap // coordinate indices in use
}

func newAssignment(coords []Coordinate, vertices int) *assignment {
	a := &assignment{
		coords: coords,
		of:     make([]int, vertices),
		used:   roaring.New(),
	}
	for i := range a.of {
		a.of[i] = unassigned
	}

	return a
}

func (a *assignment) assign(pos, k int) {
	a.of[pos] = k
	a.used.Add(uint32(k))
}

func (a *assignment) release(pos int) {
	if k := a.of[pos]; k != unassigned {
		a.used.Remove(uint32(k))
		a.of[pos] = unassigned
	}
}

func (a *assignment) free(k int) bool {
	return !a.used.Contains(uint32(k))
}

// embedder bundles the graph view used by the search.
type embedder struct {
	opts  Options
	ids   []int   // position → vertex ID
	nbrs  [][]int // position → neighbor positions (adjacency order)
	edges [][2]int
	state *assignment
	steps int
}

// IsEmbeddable reports whether g embeds into the n-cube.
func IsEmbeddable(g *core.Graph, n int, opts ...Option) (bool, error) {
	emb, err := Embed(g, n, opts...)
	if err != nil {
		return false, err
	}

	return emb != nil, nil
}

// Embed returns the first valid embedding of g into the n-cube in search
// order, or nil if none exists (including when g does not have exactly 2^n
// vertices).
func Embed(g *core.Graph, n int, opts ...Option) (*Embedding, error) {
	// 1. Validate inputs
	if err := core.Validate(g); err != nil {
		return nil, err
	}
	if err := checkDimension(n); err != nil {
		return nil, fmt.Errorf("hypercube: Embed(n=%d): %w", n, err)
	}
	if g.VertexCount() != 1<<n {
		return nil, nil
	}

	// 2. Apply options
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}

	e, err := newEmbedder(g, eopts, Coordinates(n))
	if err != nil {
		return nil, err
	}

	// 3. Search
	found, err := e.search()
	if err != nil || !found {
		return nil, err
	}

	return e.result(n), nil
}

func newEmbedder(g *core.Graph, opts Options, coords []Coordinate) (*embedder, error) {
	adj := opts.Adjacency
	if adj == nil {
		adj = core.BuildAdjacency(g)
	}

	ids := g.VertexIDs()
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	nbrs := make([][]int, len(ids))
	for i, id := range ids {
		for _, nid := range adj.Neighbors(id) {
			p, ok := pos[nid]
			if !ok {
				return nil, fmt.Errorf("hypercube: adjacency of %d references %d: %w", id, nid, core.ErrUnknownEndpoint)
			}
			nbrs[i] = append(nbrs[i], p)
		}
	}

	edges := make([][2]int, len(g.Edges))
	for i, ed := range g.Edges {
		edges[i] = [2]int{pos[ed.Source], pos[ed.Target]}
	}

	return &embedder{
		opts:  opts,
		ids:   ids,
		nbrs:  nbrs,
		edges: edges,
		state: newAssignment(coords, len(ids)),
	}, nil
}

// search drives the frame stack until an embedding passes final validation
// or the search space is exhausted.
func (e *embedder) search() (bool, error) {
	total := len(e.ids)
	size := len(e.state.coords)

	stack := arraystack.New()
	stack.Push(&frame{pos: 0, next: 0, cur: unassigned})

	for !stack.Empty() {
		if e.steps%cancelCheckEvery == 0 {
			select {
			case <-e.opts.Ctx.Done():
				return false, e.opts.Ctx.Err()
			default:
			}
		}
		e.steps++

		top, _ := stack.Peek()
		f := top.(*frame)

		// complete assignment: final validation, else resume the parent frame
		if f.pos == total {
			stack.Pop()
			if e.validateAll() {
				return true, nil
			}
			continue
		}

		// undo the coordinate held from the previous visit of this frame
		if f.cur != unassigned {
			e.state.release(f.pos)
			f.cur = unassigned
		}

		advanced := false
		for k := f.next; k < size; k++ {
			if !e.state.free(k) {
				continue
			}
			e.state.assign(f.pos, k)
			if e.partialValid(f.pos) {
				f.cur = k
				f.next = k + 1
				stack.Push(&frame{pos: f.pos + 1, next: 0, cur: unassigned})
				advanced = true
				break
			}
			e.state.release(f.pos)
		}

		if !advanced {
			// exhausted: backtrack to the previous vertex
			f.next = size
			stack.Pop()
		}
	}

	return false, nil
}

// partialValid checks the coordinate of pos against every assigned neighbor.
func (e *embedder) partialValid(pos int) bool {
	c := e.state.coords[e.state.of[pos]]
	for _, nb := range e.nbrs[pos] {
		k := e.state.of[nb]
		if k == unassigned {
			continue
		}
		if Hamming(c, e.state.coords[k]) != 1 {
			return false
		}
	}

	return true
}

// validateAll re-checks every edge of the edge list.
func (e *embedder) validateAll() bool {
	for _, ed := range e.edges {
		ku, kv := e.state.of[ed[0]], e.state.of[ed[1]]
		if ku == unassigned || kv == unassigned {
			return false
		}
		if Hamming(e.state.coords[ku], e.state.coords[kv]) != 1 {
			return false
		}
	}

	return true
}

func (e *embedder) result(n int) *Embedding {
	emb := &Embedding{Dimension: n, Coords: make(map[int]Coordinate, len(e.ids))}
	for p, id := range e.ids {
		emb.Coords[id] = e.state.coords[e.state.of[p]]
	}

	return emb
}
