// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is index 0; leaves are indices 1..n-1.
//   - Emits spokes hub → leaf[i] in increasing leaf order. Directed graphs
//     get one-way spokes only (an out-star).
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snakegraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		addVertices(g, n, cfg)
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.idFn(i))
		}

		return nil
	}
}
