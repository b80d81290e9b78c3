// SPDX-License-Identifier: MIT
//
// impl_complete.go - implementation of the Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Appends n nodes after the current Size(), values via cfg.valueFn.
//   - Emits every ordered pair base+i → base+j (i ≠ j) with i ascending,
//     then j ascending; no self-loops, so the block stays Simple().

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph
// K_n with both orientations of every pair.
// Complexity: O(n) nodes + O(n²) edge insertions.
func Complete[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], cfg config[T]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
		}

		base := g.Size()
		for i := 0; i < n; i++ {
			g.PushBack(cfg.valueFn(i))
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := g.Connect(base+i, base+j); err != nil {
					return fmt.Errorf("%s: Connect(%d,%d): %w", methodComplete, base+i, base+j, err)
				}
			}
		}

		return nil
	}
}
