// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). P_1 is a single vertex.
//   - Adds vertices idFn(0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snakegraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		addVertices(g, n, cfg)
		for i := 1; i < n; i++ {
			g.AddEdge(cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}
