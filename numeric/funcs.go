// SPDX-License-Identifier: MIT
// Package: numeric
//
// Purpose:
//   - Provide the capability set every generic lvgeom operation relies on:
//     square root and the trigonometric family.
//   - Dispatch each call to the kernel native to the concrete kind, so a
//     float32 caller never pays for a float64 round trip.
//
// Determinism & Performance:
//   - Every function is pure and allocation-free.
//   - The kind check is a width comparison; it never escapes to reflection.

package numeric

import (
	"math"

	"github.com/chewxy/math32"
)

// Sqrt returns the square root of x. Sqrt of a negative number is NaN.
func Sqrt[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sqrt(float32(x)))
	}

	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[T Float](x T) T {
	if is32[T]() {
		return T(math32.Sin(float32(x)))
	}

	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Cos(float32(x)))
	}

	return T(math.Cos(float64(x)))
}

// SinCos returns Sin(x), Cos(x) from a single combined evaluation.
//
// Precision:
//   - float32: near x = π the result is bounded by the float32 rounding of
//     π itself, so sin may come back as ≈ -8.742278e-8 rather than 0.
//     Callers scaling by large radii should expect the error to scale too.
func SinCos[T Float](x T) (sin, cos T) {
	if is32[T]() {
		s, c := math32.Sincos(float32(x))
		return T(s), T(c)
	}
	s, c := math.Sincos(float64(x))

	return T(s), T(c)
}

// Acos returns the arccosine, in radians, of x. The result lies in [0, π];
// |x| > 1 yields NaN.
func Acos[T Float](x T) T {
	if is32[T]() {
		return T(math32.Acos(float32(x)))
	}

	return T(math.Acos(float64(x)))
}

// Atan2 returns the arc tangent of y/x using the signs of both to pick the
// quadrant. The result lies in [-π, π].
func Atan2[T Float](y, x T) T {
	if is32[T]() {
		return T(math32.Atan2(float32(y), float32(x)))
	}

	return T(math.Atan2(float64(y), float64(x)))
}

// Hypot returns Sqrt(p*p + q*q) without undue overflow or underflow.
func Hypot[T Float](p, q T) T {
	if is32[T]() {
		return T(math32.Hypot(float32(p), float32(q)))
	}

	return T(math.Hypot(float64(p), float64(q)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}

	return T(math.Abs(float64(x)))
}

// IsNaN reports whether x is an IEEE-754 "not-a-number" value.
func IsNaN[T Float](x T) bool {
	if is32[T]() {
		return math32.IsNaN(float32(x))
	}

	return math.IsNaN(float64(x))
}

// IsInf reports whether x is an infinity of either sign.
func IsInf[T Float](x T) bool {
	if is32[T]() {
		return math32.IsInf(float32(x), 0)
	}

	return math.IsInf(float64(x), 0)
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	return !IsNaN(x) && !IsInf(x)
}

// NaN returns an IEEE-754 "not-a-number" value of kind T.
func NaN[T Float]() T {
	if is32[T]() {
		return T(math32.NaN())
	}

	return T(math.NaN())
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf[T Float](sign int) T {
	if is32[T]() {
		return T(math32.Inf(sign))
	}

	return T(math.Inf(sign))
}
