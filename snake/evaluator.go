// SPDX-License-Identifier: MIT

package snake

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/snakegraph/core"
	"github.com/katalvlaran/snakegraph/hamiltonian"
	"github.com/katalvlaran/snakegraph/hypercube"
)

// Evaluator runs the snake check with a fixed configuration.
// It holds no per-graph state and is safe for concurrent use.
type Evaluator struct {
	opts Options
}

// NewEvaluator applies opts over DefaultOptions and validates the result.
func NewEvaluator(opts ...Option) (*Evaluator, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("snake: NewEvaluator(max=%d): %w", o.MaxDimension, err)
	}

	return &Evaluator{opts: o}, nil
}

// IsSnakeGraph reports whether g is a snake graph under the given options.
func IsSnakeGraph(g *core.Graph, opts ...Option) (bool, error) {
	ev, err := NewEvaluator(opts...)
	if err != nil {
		return false, err
	}

	return ev.IsSnake(g)
}

// IsSnake reports whether g is a snake graph.
func (ev *Evaluator) IsSnake(g *core.Graph) (bool, error) {
	rep, err := ev.Check(g)
	if err != nil {
		return false, err
	}

	return rep.Verdict, nil
}

// Check runs every stage on g and returns the deciding stage with witnesses.
// g is read only.
func (ev *Evaluator) Check(g *core.Graph) (*Report, error) {
	// 1. Validate input graph
	var vopts []core.ValidateOption
	if ev.opts.Strict {
		vopts = append(vopts, core.RejectLoops(), core.RejectMultiEdges())
	}
	if err := core.Validate(g, vopts...); err != nil {
		return nil, err
	}

	log := ev.opts.Logger
	rep := &Report{Vertices: g.VertexCount(), Dimension: -1}

	// 2. Vertex count
	if rep.Vertices == 0 {
		return finish(log, rep, ReasonNoVertices), nil
	}

	// 3. Power of two
	dim, ok := log2Exact(rep.Vertices, ev.opts.MaxDimension)
	if !ok {
		return finish(log, rep, ReasonNotPowerOfTwo), nil
	}
	rep.Dimension = dim
	log = log.With("vertices", rep.Vertices, "dimension", dim)

	// 4. Hamiltonian path over a shared adjacency
	adj := core.BuildAdjacency(g)
	hres, err := hamiltonian.FindPath(g,
		hamiltonian.WithContext(ev.opts.Ctx),
		hamiltonian.WithAdjacency(adj),
	)
	if err != nil {
		return nil, fmt.Errorf("snake: hamiltonian stage: %w", err)
	}
	log.Debug("stage done", "stage", "hamiltonian", "found", hres.Found, "expanded", hres.Expanded)
	if !hres.Found {
		return finish(log, rep, ReasonNoHamiltonianPath), nil
	}
	rep.Path = hres.Path

	// 5. Hypercube embedding
	if ev.opts.LabelFirst {
		emb, err := hypercube.Label(g, dim, hypercube.WithContext(ev.opts.Ctx))
		if err != nil {
			return nil, fmt.Errorf("snake: labeling stage: %w", err)
		}
		log.Debug("stage done", "stage", "label", "found", emb != nil)
		if emb != nil {
			rep.Embedding = emb
			rep.Labeled = true
			return finish(log, rep, ReasonSnake), nil
		}
	}

	emb, err := hypercube.Embed(g, dim,
		hypercube.WithContext(ev.opts.Ctx),
		hypercube.WithAdjacency(adj),
	)
	if err != nil {
		return nil, fmt.Errorf("snake: embedding stage: %w", err)
	}
	log.Debug("stage done", "stage", "embed", "found", emb != nil)
	if emb == nil {
		return finish(log, rep, ReasonNotEmbeddable), nil
	}
	rep.Embedding = emb

	return finish(log, rep, ReasonSnake), nil
}

func finish(log *slog.Logger, rep *Report, reason Reason) *Report {
	rep.Reason = reason
	rep.Verdict = reason == ReasonSnake
	log.Debug("verdict", "reason", reason.String(), "verdict", rep.Verdict)

	return rep
}

// log2Exact returns n with v == 2^n for 0 ≤ n ≤ maxDim.
func log2Exact(v, maxDim int) (int, bool) {
	for n := 0; n <= maxDim; n++ {
		if 1<<n == v {
			return n, true
		}
	}

	return 0, false
}
