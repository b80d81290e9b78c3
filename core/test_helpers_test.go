// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures and assertion helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for positional graphs.
//   - Keep the contract tests stdlib-only; behavior tests use testify.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/digraph/core"
)

// Common node values used across core tests (avoid magic numbers in test bodies).
const (
	Val10 = 10
	Val20 = 20
	Val30 = 30
	Val40 = 40
	Val99 = 99
)

// Common out-of-range probes.
const (
	NegIndex = -1
	BigIndex = 1 << 10
)

// buildTriangle returns the canonical three-node fixture:
// values [10, 20, 30] with edges 0→1, 1→2, 2→0.
func buildTriangle(t *testing.T) *core.Graph[int] {
	t.Helper()

	g := core.From(Val10, Val20, Val30)
	MustNoError(t, g.Connect(0, 1), "Connect(0,1)")
	MustNoError(t, g.Connect(1, 2), "Connect(1,2)")
	MustNoError(t, g.Connect(2, 0), "Connect(2,0)")

	return g
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue fails the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: predicate is false", op)
}

// MustFalse fails the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: predicate is true", op)
}

// MustEqualInt fails if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustIndegree resolves Indegree(k) or fails; keeps degree assertions compact.
func MustIndegree(t *testing.T, g *core.Graph[int], k int) int {
	t.Helper()

	deg, err := g.Indegree(k)
	MustNoError(t, err, "Indegree")

	return deg
}

// MustOutdegree resolves Outdegree(k) or fails.
func MustOutdegree(t *testing.T, g *core.Graph[int], k int) int {
	t.Helper()

	deg, err := g.Outdegree(k)
	MustNoError(t, err, "Outdegree")

	return deg
}
