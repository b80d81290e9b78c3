// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public entry point for the builder package.
// Policy:
//   - Functional options resolve into an immutable config (no global state).
//   - Determinism: same options and constructor order ⇒ Equal graphs.
//   - Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// Constructor applies one deterministic topology mutation to g using the
// resolved config. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append nodes after the current g.Size() so compositions stack.
//   - Emit edges in a stable, documented order.
type Constructor[T comparable] func(g *core.Graph[T], cfg config[T]) error

// Option configures the builder before construction.
type Option[T comparable] func(*config[T])

// config is the immutable resolved configuration handed to constructors.
type config[T comparable] struct {
	// valueFn produces the value for the i-th node of a topology
	// (0-indexed within that topology, not the whole graph).
	valueFn func(i int) T
}

// WithValueFn sets the per-index value producer for constructed nodes.
// A nil fn is ignored, keeping the zero-value default.
func WithValueFn[T comparable](fn func(i int) T) Option[T] {
	return func(c *config[T]) {
		if fn != nil {
			c.valueFn = fn
		}
	}
}

// newConfig resolves options left-to-right over the zero-value default.
// Complexity: O(len(opts)).
func newConfig[T comparable](opts ...Option[T]) config[T] {
	cfg := config[T]{valueFn: func(int) T {
		var zero T
		return zero
	}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Build creates a new core.Graph, resolves the configuration from opts,
// and applies all constructors in order. Any constructor error is wrapped
// with "Build: %w" and returned immediately; no partial cleanup is
// attempted by design — callers discard the graph on error.
//
// Complexity: O(len(opts)) resolution plus the cost of each constructor.
func Build[T comparable](opts []Option[T], cons ...Constructor[T]) (*core.Graph[T], error) {
	g := core.New[T]()
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
