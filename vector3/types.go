// SPDX-License-Identifier: MIT

// Package vector3: the Vector3 value type and its tuple/array interop.
package vector3

import "github.com/katalvlaran/lvgeom/numeric"

// Vector3 is a point (or displacement) in 3D space.
//
// Equality is componentwise and works with ==. Ordering is partial; see
// PartialCompare.
type Vector3[T numeric.Float] struct {
	// X is the left (-) / right (+) axis.
	X T `json:"x" yaml:"x"`
	// Y is the out (-) / in (+) axis.
	Y T `json:"y" yaml:"y"`
	// Z is the down (-) / up (+) axis.
	Z T `json:"z" yaml:"z"`
}

// New returns Vector3{x, y, z}.
func New[T numeric.Float](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// FromTuple is the 3-tuple constructor; it is identical to New and exists
// so call sites holding (x, y, z) results read naturally:
//
//	v := vector3.FromTuple(other.Tuple())
func FromTuple[T numeric.Float](x, y, z T) Vector3[T] {
	return New(x, y, z)
}

// FromArray builds a vector from the ordered sequence [x, y, z].
func FromArray[T numeric.Float](a [3]T) Vector3[T] {
	return Vector3[T]{X: a[0], Y: a[1], Z: a[2]}
}

// Tuple returns the components as (x, y, z).
func (v Vector3[T]) Tuple() (x, y, z T) {
	return v.X, v.Y, v.Z
}

// Array returns the components as the ordered sequence [x, y, z].
func (v Vector3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// Convert changes the numeric kind of v, e.g. float64 → float32.
// Narrowing rounds each component to the nearest representable value.
func Convert[U, T numeric.Float](v Vector3[T]) Vector3[U] {
	return Vector3[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}
