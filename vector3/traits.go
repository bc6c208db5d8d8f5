// SPDX-License-Identifier: MIT
// Package vector3: capability interfaces.
// Code that only needs one capability (a length, a dot product) can accept
// the interface rather than Vector3 itself.

package vector3

import "github.com/katalvlaran/lvgeom/numeric"

// Magnituder has a Euclidean length and a cheaper squared length.
type Magnituder[T numeric.Float] interface {
	Magnitude() T
	QuickMagnitude() T
}

// Dotter has a dot product with values of its own type.
type Dotter[V any, T numeric.Float] interface {
	Dot(o V) T
}

// Crosser has a 3D cross product with values of its own type.
type Crosser[V any] interface {
	Cross(o V) V
}

// Positional can measure the angle to another position of its own type.
type Positional[V any, T numeric.Float] interface {
	AngleTo(o V) T
}

// Compile-time checks.
var (
	_ Magnituder[float32]                   = Vector3[float32]{}
	_ Magnituder[float64]                   = Vector3[float64]{}
	_ Dotter[Vector3[float64], float64]     = Vector3[float64]{}
	_ Crosser[Vector3[float32]]             = Vector3[float32]{}
	_ Positional[Vector3[float64], float64] = Vector3[float64]{}
	_ Positional[Vector3[float32], float32] = Vector3[float32]{}
)
