// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     and mirrors to j→i only if the graph is directed.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snakegraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		addVertices(g, n, cfg)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(cfg.idFn(i), cfg.idFn(j))
				if g.Directed {
					g.AddEdge(cfg.idFn(j), cfg.idFn(i))
				}
			}
		}

		return nil
	}
}
