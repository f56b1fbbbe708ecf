// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, dim, index) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a size parameter above the supported maximum
// (e.g., a hypercube dimension that would not fit the search range).
var ErrBadSize = errors.New("builder: invalid size")

// ErrConstructFailed indicates that a constructor could not be applied
// (nil constructor, chord endpoint missing from the graph).
var ErrConstructFailed = errors.New("builder: construction failed")
