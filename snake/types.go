// SPDX-License-Identifier: MIT

package snake

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/snakegraph/hypercube"
)

// DefaultMaxDimension is the largest cube dimension checked by default:
// graphs with more than 2^19 vertices are rejected at the power-of-two stage.
const DefaultMaxDimension = 19

// ErrMaxDimension is returned by NewEvaluator for a maximum dimension outside
// [0, hypercube.MaxDimension].
var ErrMaxDimension = errors.New("snake: max dimension out of range")

// Option configures an Evaluator.
type Option func(*Options)

// Options holds the evaluator configuration.
type Options struct {
	// Ctx bounds every search; defaults to context.Background().
	Ctx context.Context

	// Logger receives one debug record per stage; defaults to a discarding logger.
	Logger *slog.Logger

	// MaxDimension is the largest n for which 2^n vertices are accepted.
	MaxDimension int

	// Strict rejects self-loops and parallel edges as invalid input.
	Strict bool

	// LabelFirst tries hypercube.Label before the backtracking search.
	LabelFirst bool
}

// DefaultOptions returns the evaluator defaults: background context,
// discarding logger, DefaultMaxDimension, lenient validation, no fast path.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Logger:       slog.New(slog.DiscardHandler),
		MaxDimension: DefaultMaxDimension,
	}
}

// WithContext sets the context used by every search. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDimension bounds the accepted cube dimension.
// NewEvaluator rejects values outside [0, hypercube.MaxDimension].
func WithMaxDimension(n int) Option {
	return func(o *Options) {
		o.MaxDimension = n
	}
}

// WithStrictValidation makes self-loops and parallel edges an InvalidGraphError
// instead of tolerating them.
func WithStrictValidation() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithLabelingFastPath tries the breadth-first labeling before backtracking.
// The verdict is unchanged; only the embedding witness may differ.
func WithLabelingFastPath() Option {
	return func(o *Options) {
		o.LabelFirst = true
	}
}

func (o Options) validate() error {
	if o.MaxDimension < 0 || o.MaxDimension > hypercube.MaxDimension {
		return ErrMaxDimension
	}

	return nil
}

// Reason names the stage that decided the verdict.
type Reason int

const (
	// ReasonSnake means every stage passed.
	ReasonSnake Reason = iota
	// ReasonNoVertices means the graph is empty.
	ReasonNoVertices
	// ReasonNotPowerOfTwo means the vertex count is not 2^n for an accepted n.
	ReasonNotPowerOfTwo
	// ReasonNoHamiltonianPath means no path visits every vertex exactly once.
	ReasonNoHamiltonianPath
	// ReasonNotEmbeddable means no hypercube embedding exists.
	ReasonNotEmbeddable
)

// String returns a short, stable name usable as a log value.
func (r Reason) String() string {
	switch r {
	case ReasonSnake:
		return "snake"
	case ReasonNoVertices:
		return "no-vertices"
	case ReasonNotPowerOfTwo:
		return "not-power-of-two"
	case ReasonNoHamiltonianPath:
		return "no-hamiltonian-path"
	case ReasonNotEmbeddable:
		return "not-embeddable"
	default:
		return "unknown"
	}
}

// Report is the detailed outcome of Evaluator.Check.
type Report struct {
	// Verdict is true iff the graph is a snake graph.
	Verdict bool

	// Reason is the deciding stage.
	Reason Reason

	// Vertices is the vertex count.
	Vertices int

	// Dimension is log2(Vertices), or -1 when the power-of-two stage failed.
	Dimension int

	// Path is the Hamiltonian witness when that stage passed.
	Path []int

	// Embedding is the hypercube witness when Verdict is true.
	Embedding *hypercube.Embedding

	// Labeled reports that the embedding came from the labeling fast path.
	Labeled bool
}
