// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// impl_hypercube.go - implementation of Hypercube(dim) and Chord(i,j).
//
// Contract (Hypercube):
//   - 0 ≤ dim ≤ MaxHypercubeDim (else ErrTooFewVertices / ErrBadSize).
//   - Vertex index i stands for the dim-bit string of i.
//   - Emits edges i -> i^(1<<b) for every i and bit b with i < i^(1<<b),
//     ordered by i ascending, then b ascending. Directed graphs get the
//     low→high orientation only.
//
// Contract (Chord):
//   - i, j ≥ 0 (else ErrTooFewVertices).
//   - Both endpoints must already be present (else ErrConstructFailed).
//
// Complexity:
//   - Hypercube: Time O(2^dim · dim).
//   - Chord: Time O(V) for the presence check.

package builder

import (
	"fmt"

	"github.com/katalvlaran/snakegraph/core"
)

const (
	methodHypercube = "Hypercube"
	methodChord     = "Chord"

	// MaxHypercubeDim bounds Hypercube(dim) to 2^16 vertices.
	MaxHypercubeDim = 16
)

// Hypercube returns a Constructor that builds the dim-dimensional hypercube Q_dim.
func Hypercube(dim int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if dim < 0 {
			return fmt.Errorf("%s: dim=%d < min=0: %w", methodHypercube, dim, ErrTooFewVertices)
		}
		if dim > MaxHypercubeDim {
			return fmt.Errorf("%s: dim=%d > max=%d: %w", methodHypercube, dim, MaxHypercubeDim, ErrBadSize)
		}

		n := 1 << dim
		addVertices(g, n, cfg)
		for i := 0; i < n; i++ {
			for b := 0; b < dim; b++ {
				j := i ^ (1 << b)
				if i < j {
					g.AddEdge(cfg.idFn(i), cfg.idFn(j))
				}
			}
		}

		return nil
	}
}

// Chord returns a Constructor that adds one edge idFn(i) -> idFn(j) between
// vertices added by earlier constructors.
func Chord(i, j int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if i < 0 || j < 0 {
			return fmt.Errorf("%s: (%d,%d) negative index: %w", methodChord, i, j, ErrTooFewVertices)
		}

		u, v := cfg.idFn(i), cfg.idFn(j)
		if !hasVertex(g, u) || !hasVertex(g, v) {
			return fmt.Errorf("%s: %d→%d endpoint missing: %w", methodChord, u, v, ErrConstructFailed)
		}
		g.AddEdge(u, v)

		return nil
	}
}
