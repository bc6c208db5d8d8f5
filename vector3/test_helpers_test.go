// SPDX-License-Identifier: MIT
// Package vector3_test contains test helpers.
//
// Purpose:
//   • Deterministic random vectors for the algebraic property tests.
//   • Per-kind tolerances so the same property runs at both precisions.

package vector3_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector3"
)

// defaultSeed is used when a test passes seed==0.
const defaultSeed int64 = 1

// propertyRounds is how many random samples each property test draws.
const propertyRounds = 500

// rngFromSeed returns a deterministic *rand.Rand; seed==0 selects defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// randVector draws a vector with every component uniform in [-scale, scale).
func randVector[T numeric.Float](r *rand.Rand, scale float64) vector3.Vector3[T] {
	c := func() T { return T((r.Float64()*2 - 1) * scale) }
	return vector3.New(c(), c(), c())
}

// tolFor returns a comparison tolerance a few ulps wide for T's kind,
// widened by factor for operations that accumulate rounding.
func tolFor[T numeric.Float](factor float64) T {
	return numeric.Epsilon[T]() * T(factor)
}

// requireApprox fails the test unless got matches want within tol.
func requireApprox[T numeric.Float](t *testing.T, want, got vector3.Vector3[T], tol T, msgAndArgs ...any) {
	t.Helper()
	if !want.ApproxEqual(got, tol) {
		t.Fatalf("want %v, got %v (tol %v) %v", want, got, tol, msgAndArgs)
	}
}
