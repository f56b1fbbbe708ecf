// Package snakegraph decides whether a graph is a "snake graph": a graph
// that has a Hamiltonian path and embeds into an n-dimensional hypercube so
// that every edge joins two corners differing in exactly one bit.
//
// The module is organized as small packages, leaf first:
//
//	core/        Graph, Vertex, Edge, adjacency builder, validation
//	hamiltonian/ backtracking Hamiltonian path search
//	hypercube/   coordinates, Hamming distance, embedding search, labeling
//	snake/       the staged evaluator (IsSnakeGraph, Evaluator, Report)
//	builder/     deterministic graph constructors for tests and examples
//	converters/  JSON graph documents, optionally gzip/zstd/lz4 compressed
//	cmd/snakecheck/ batch command-line checker
//
// Quick start:
//
//	g := core.NewGraph()
//	for id := 1; id <= 4; id++ {
//		g.AddVertex(id)
//	}
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	g.AddEdge(3, 4)
//
//	ok, err := snake.IsSnakeGraph(g) // true: 1-2-3-4 walks the square
//
// Every search is synchronous and owns its state; the input graph is never
// modified. Long searches can be bounded with a
// context.Context through each package's WithContext option.
package snakegraph
