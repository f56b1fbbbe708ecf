// SPDX-License-Identifier: MIT

// Package snake decides whether a graph is a snake graph: it has a
// Hamiltonian path and embeds into the n-cube, where n = log2(vertex count).
//
// Stages run in a fixed order and stop at the first failure:
//
//  1. vertex count (an empty graph is never a snake)
//  2. vertex count is 2^n with 0 ≤ n ≤ MaxDimension
//  3. Hamiltonian path (hamiltonian.FindPath)
//  4. hypercube embedding (hypercube.Embed, optionally preceded by the
//     hypercube.Label fast path)
//
// Failing a stage yields a false verdict, never an error. Errors are
// reserved for malformed input (*core.InvalidGraphError), bad options and
// context cancellation.
//
// Quick use:
//
//	ok, err := snake.IsSnakeGraph(g)
//
// Reusable evaluator with diagnostics:
//
//	ev, err := snake.NewEvaluator(snake.WithLogger(logger), snake.WithLabelingFastPath())
//	rep, err := ev.Check(g)
//	fmt.Println(rep.Verdict, rep.Reason, rep.Path)
package snake
