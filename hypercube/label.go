package hypercube

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/snakegraph/core"
)

// Label grows an embedding by breadth-first bit flips instead of full
// backtracking. It is a fast, incomplete heuristic:
//
//   - Each connected component (edges taken in both directions) starts at its
//     first vertex in input order, on the lowest unused coordinate.
//   - A newly reached vertex takes the parent's coordinate with the lowest bit
//     b flipped such that the result is unused and at distance 1 from every
//     already-labeled neighbor.
//
// Label walks every edge in both directions, so it builds its own neighbor
// lists and ignores Options.Adjacency; only Options.Ctx is honored.
//
// The labeling is returned only if ValidateEmbedding accepts it. A nil result
// means the heuristic gave up, not that no embedding exists; callers fall back
// to Embed for a definitive answer.
//
// Complexity: Time O(V·n·deg + E), Memory O(V+E+2^n).
func Label(g *core.Graph, n int, opts ...Option) (*Embedding, error) {
	if err := core.Validate(g); err != nil {
		return nil, err
	}
	if err := checkDimension(n); err != nil {
		return nil, fmt.Errorf("hypercube: Label(n=%d): %w", n, err)
	}
	if g.VertexCount() != 1<<n {
		return nil, nil
	}

	lopts := DefaultOptions()
	for _, fn := range opts {
		fn(&lopts)
	}

	coords := Coordinates(n)
	ids := g.VertexIDs()
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	// labeling needs reachability in both directions
	nbrs := make([][]int, len(ids))
	for _, e := range g.Edges {
		u, v := pos[e.Source], pos[e.Target]
		nbrs[u] = append(nbrs[u], v)
		nbrs[v] = append(nbrs[v], u)
	}

	st := newAssignment(coords, len(ids))
	fits := func(p, k int) bool {
		for _, nb := range nbrs[p] {
			if j := st.of[nb]; j != unassigned && Hamming(coords[k], coords[j]) != 1 {
				return false
			}
		}
		return true
	}

	queue := linkedlistqueue.New()
	for root := range ids {
		if st.of[root] != unassigned {
			continue
		}
		select {
		case <-lopts.Ctx.Done():
			return nil, lopts.Ctx.Err()
		default:
		}

		k := lowestFree(st, len(coords))
		if k == unassigned || !fits(root, k) {
			return nil, nil
		}
		st.assign(root, k)
		queue.Enqueue(root)

		for !queue.Empty() {
			head, _ := queue.Dequeue()
			u := head.(int)
			for _, v := range nbrs[u] {
				if st.of[v] != unassigned {
					continue
				}
				placed := false
				for b := 0; b < n; b++ {
					k := st.of[u] ^ (1 << b)
					if st.free(k) && fits(v, k) {
						st.assign(v, k)
						queue.Enqueue(v)
						placed = true
						break
					}
				}
				if !placed {
					return nil, nil
				}
			}
		}
	}

	emb := &Embedding{Dimension: n, Coords: make(map[int]Coordinate, len(ids))}
	for p, id := range ids {
		emb.Coords[id] = coords[st.of[p]]
	}
	if !ValidateEmbedding(g, emb) {
		return nil, nil
	}

	return emb, nil
}

func lowestFree(st *assignment, size int) int {
	for k := 0; k < size; k++ {
		if st.free(k) {
			return k
		}
	}

	return unassigned
}

// ValidateEmbedding reports whether emb is a valid embedding of g: every
// vertex has a coordinate of length emb.Dimension, no two vertices share a
// coordinate, and every edge joins coordinates at Hamming distance 1.
func ValidateEmbedding(g *core.Graph, emb *Embedding) bool {
	if g == nil || emb == nil || checkDimension(emb.Dimension) != nil {
		return false
	}
	if len(emb.Coords) != g.VertexCount() {
		return false
	}

	taken := bitset.New(uint(1) << uint(emb.Dimension))
	for _, v := range g.Vertices {
		c, ok := emb.Coords[v.ID]
		if !ok || len(c) != emb.Dimension || !c.valid() {
			return false
		}
		idx := uint(c.Index())
		if taken.Test(idx) {
			return false
		}
		taken.Set(idx)
	}

	for _, e := range g.Edges {
		if Hamming(emb.Coords[e.Source], emb.Coords[e.Target]) != 1 {
			return false
		}
	}

	return true
}
