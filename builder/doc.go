// Package builder provides deterministic, composable constructors for the
// graph shapes the snake check is usually exercised with: paths, cycles,
// stars, complete graphs, hypercubes and extra chords.
//
// Constructors are closures applied by BuildGraph to a fresh core.Graph:
//
//	g, err := builder.BuildGraph(
//		nil,                                        // core.GraphOption
//		[]builder.BuilderOption{builder.WithBaseID(1)},
//		builder.Hypercube(3),
//		builder.Chord(0, 7),
//	)
//
// Vertex IDs come from the configured ID scheme applied to a zero-based
// index (WithBaseID shifts it, WithIDScheme replaces it). Constructors that
// add vertices skip IDs already present, so they compose without duplicates.
// WithReversedOrder appends new vertices in descending index order, which
// keeps the edge set intact while changing vertex input order.
//
// Errors:
//
//	ErrTooFewVertices  - size parameter below the constructor minimum.
//	ErrBadSize         - size parameter above the supported maximum.
//	ErrConstructFailed - nil constructor or a chord to a missing vertex.
package builder
