// SPDX-License-Identifier: MIT
//
// impl_star.go - implementation of the Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Appends n nodes after the current Size(); base+0 is the center.
//   - Emits spokes base+0 → base+i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds an outward star S_n: the center
// at the first appended position points at every leaf.
// Complexity: O(n) nodes + O(n-1) edge insertions.
func Star[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], cfg config[T]) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		base := g.Size()
		for i := 0; i < n; i++ {
			g.PushBack(cfg.valueFn(i))
		}

		for i := 1; i < n; i++ {
			if err := g.Connect(base, base+i); err != nil {
				return fmt.Errorf("%s: Connect(%d,%d): %w", methodStar, base, base+i, err)
			}
		}

		return nil
	}
}
