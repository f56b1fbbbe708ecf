// SPDX-License-Identifier: MIT
// Package: snakegraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator: index -> ID.
// fn must be injective over the indices used. Panics on nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithBaseID shifts IDs so that index 0 maps to base (e.g. 1 for 1-based fixtures).
func WithBaseID(base int) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) int { return base + i }
	}
}

// WithReversedOrder appends new vertices in descending index order.
func WithReversedOrder() BuilderOption {
	return func(c *builderConfig) {
		c.reversed = true
	}
}
