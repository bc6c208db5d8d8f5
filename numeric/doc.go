// SPDX-License-Identifier: MIT

// Package numeric is the generic floating-point abstraction shared by every
// lvgeom primitive.
//
// 🚀 What does it give you?
//
//	A single constraint, Float, plus a small capability set (Sqrt, SinCos,
//	Acos, Atan2, …) that is written once and dispatched per concrete kind:
//	  • float32 → github.com/chewxy/math32 (native single precision)
//	  • float64 → the standard math package
//
// ✨ Key features:
//   - closed, explicit list of supported kinds (Kind: Float32, Float64)
//   - combined SinCos evaluation for both kinds
//   - per-kind machine epsilon and tolerance helpers for comparisons
//   - no state, no allocation, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgeom/numeric"
//
//	s, c := numeric.SinCos[float32](numeric.FracPi2[float32]())
//	ok := numeric.AlmostEqual(s, 1, numeric.Epsilon[float32]())
//
// Floating-point edge behaviour (NaN, ±Inf) is passed through unchanged;
// nothing in this package returns an error.
package numeric
