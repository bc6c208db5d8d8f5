// SPDX-License-Identifier: MIT
// Package: vector3
//
// Purpose:
//   - Componentwise arithmetic (Neg, Add, Sub, Scale, Div).
//   - Products and lengths (Dot, Cross, Magnitude, QuickMagnitude).
//   - Angular and metric helpers (AngleTo, Distance, Normalize, Lerp).
//
// Floating-point policy:
//   - No operation here validates its inputs. NaN and ±Inf propagate as
//     IEEE-754 specifies; see checked.go for the validating variants.

package vector3

import "github.com/katalvlaran/lvgeom/numeric"

// Neg returns (-x, -y, -z).
func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Add returns v + o.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s.
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v / s componentwise.
//
// A zero divisor is not trapped: a non-zero component becomes ±Inf and a
// zero component becomes NaN. Use CheckedDiv to reject s == 0 instead.
func (v Vector3[T]) Div(s T) Vector3[T] {
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns x1*x2 + y1*y2 + z1*z2.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o:
//
//	(y1*z2 − z1*y2, z1*x2 − x1*z2, x1*y2 − y1*x2)
//
// The result is perpendicular to both operands and its length equals the
// area of the parallelogram they span. Cross is anticommutative:
// a.Cross(b) == b.Cross(a).Neg().
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// QuickMagnitude returns the squared length x² + y² + z².
// It skips the square root, so prefer it when only ordering by length
// matters (nearest-neighbour ranking, threshold checks against r²).
func (v Vector3[T]) QuickMagnitude() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the Euclidean length √(x² + y² + z²).
func (v Vector3[T]) Magnitude() T {
	return numeric.Sqrt(v.QuickMagnitude())
}

// AngleTo returns the angle between v and o in radians, within [0, π]:
//
//	acos(v·o / (|v|·|o|))
//
// The result is NaN when either vector has zero length. Rounding can push
// the cosine a hair outside [-1, 1] for (anti)parallel inputs; it is
// clamped so those cases return 0 or π rather than NaN.
func (v Vector3[T]) AngleTo(o Vector3[T]) T {
	cos := v.Dot(o) / (v.Magnitude() * o.Magnitude())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return numeric.Acos(cos)
}

// Distance returns |v - o|.
func (v Vector3[T]) Distance(o Vector3[T]) T {
	return v.Sub(o).Magnitude()
}

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components; CheckedNormalize reports it as ErrZeroMagnitude.
func (v Vector3[T]) Normalize() Vector3[T] {
	return v.Div(v.Magnitude())
}

// Lerp returns the linear interpolation v + (o - v)*t.
// t is not clamped: values outside [0, 1] extrapolate.
func (v Vector3[T]) Lerp(o Vector3[T], t T) Vector3[T] {
	return v.Add(o.Sub(v).Scale(t))
}
