// SPDX-License-Identifier: MIT
//
// impl_path.go - implementation of the Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Appends n nodes after the current Size(), values via cfg.valueFn.
//   - Emits edges base+(i-1) → base+i for i=1..n-1 in increasing order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple directed path P_n.
// Complexity: O(n) nodes + O(n-1) edge insertions.
func Path[T comparable](n int) Constructor[T] {
	return func(g *core.Graph[T], cfg config[T]) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}

		base := g.Size()
		for i := 0; i < n; i++ {
			g.PushBack(cfg.valueFn(i))
		}

		for i := 1; i < n; i++ {
			if err := g.Connect(base+i-1, base+i); err != nil {
				return fmt.Errorf("%s: Connect(%d,%d): %w", methodPath, base+i-1, base+i, err)
			}
		}

		return nil
	}
}
