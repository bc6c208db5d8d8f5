// SPDX-License-Identifier: MIT

// Package numeric: the Float constraint and the closed set of supported kinds.
package numeric

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is any type whose underlying type is float32 or float64.
// Named types such as `type Meters float64` are accepted and dispatched
// by their storage width.
type Float interface {
	constraints.Float
}

// Kind identifies one of the concrete floating-point representations the
// library supports. The list is closed: every per-kind table in lvgeom has
// exactly one entry for each Kind.
type Kind uint8

const (
	// Float32 is IEEE-754 single precision.
	Float32 Kind = iota + 1

	// Float64 is IEEE-754 double precision.
	Float64
)

// String returns the Go spelling of the kind.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// Bits reports the storage width of the kind in bits.
func (k Kind) Bits() int {
	switch k {
	case Float32:
		return 32
	case Float64:
		return 64
	default:
		return 0
	}
}

// KindOf resolves the Kind of T from its storage width.
// Complexity: O(1).
func KindOf[T Float]() Kind {
	if is32[T]() {
		return Float32
	}

	return Float64
}

// ParseKind maps "float32"/"f32" and "float64"/"f64" onto a Kind.
// The second result is false for any other spelling.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "float32", "f32", "single":
		return Float32, true
	case "float64", "f64", "double":
		return Float64, true
	default:
		return 0, false
	}
}

// is32 reports whether T is stored in four bytes.
func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}
