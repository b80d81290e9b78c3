// SPDX-License-Identifier: MIT
//
// impl_cycle.go - implementation of the Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Appends n nodes after the current Size(), values via cfg.valueFn.
//   - Emits the Path edges in increasing order, then the closing edge
//     base+n-1 → base+0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n.
// Complexity: O(n) nodes + O(n) edge insertions.
func Cycle[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], cfg config[T]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
		}

		base := g.Size()
		for i := 0; i < n; i++ {
			g.PushBack(cfg.valueFn(i))
		}

		for i := 1; i < n; i++ {
			if err := g.Connect(base+i-1, base+i); err != nil {
				return fmt.Errorf("%s: Connect(%d,%d): %w", methodCycle, base+i-1, base+i, err)
			}
		}
		if err := g.Connect(base+n-1, base); err != nil {
			return fmt.Errorf("%s: Connect(%d,%d): %w", methodCycle, base+n-1, base, err)
		}

		return nil
	}
}
