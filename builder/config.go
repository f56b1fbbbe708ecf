// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = identity  (index i → vertex ID i)
//   • reversed = false     (vertices appended in ascending index order)

package builder

import "github.com/katalvlaran/snakegraph/core"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic, injective).
	idFn func(int) int
	// Append new vertices in descending index order.
	reversed bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     identityID,
		reversed: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func identityID(i int) int { return i }

// addVertices appends idFn(0..n-1) to g, skipping IDs already present.
// Order is ascending by index, or descending when cfg.reversed.
// Complexity: O(V+n).
func addVertices(g *core.Graph, n int, cfg builderConfig) {
	present := make(map[int]struct{}, len(g.Vertices)+n)
	for _, v := range g.Vertices {
		present[v.ID] = struct{}{}
	}

	add := func(i int) {
		id := cfg.idFn(i)
		if _, ok := present[id]; ok {
			return
		}
		present[id] = struct{}{}
		g.AddVertex(id)
	}

	if cfg.reversed {
		for i := n - 1; i >= 0; i-- {
			add(i)
		}
		return
	}
	for i := 0; i < n; i++ {
		add(i)
	}
}

// hasVertex reports whether id is in g. O(V).
func hasVertex(g *core.Graph, id int) bool {
	for _, v := range g.Vertices {
		if v.ID == id {
			return true
		}
	}

	return false
}
