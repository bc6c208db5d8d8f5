// SPDX-License-Identifier: MIT

package vector3

import "github.com/katalvlaran/lvgeom/numeric"

// Equal reports componentwise equality. It matches v == o; it exists so
// Vector3 satisfies interfaces that need a method.
func (v Vector3[T]) Equal(o Vector3[T]) bool {
	return v == o
}

// ApproxEqual reports whether every component pair agrees within tol
// (absolute-or-relative, see numeric.AlmostEqual).
func (v Vector3[T]) ApproxEqual(o Vector3[T], tol T) bool {
	return numeric.AlmostEqual(v.X, o.X, tol) &&
		numeric.AlmostEqual(v.Y, o.Y, tol) &&
		numeric.AlmostEqual(v.Z, o.Z, tol)
}

// IsZero reports whether v is the zero vector (either sign of zero).
func (v Vector3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector3[T]) IsFinite() bool {
	return numeric.IsFinite(v.X) && numeric.IsFinite(v.Y) && numeric.IsFinite(v.Z)
}

// PartialCompare orders v against o componentwise.
//
// Result:
//   - (0, true) : all components equal.
//   - (-1, true): every component of v is <= its peer and at least one is <.
//   - (1, true) : every component of v is >= its peer and at least one is >.
//   - (0, false): the relations disagree, or a NaN is involved; the two
//     vectors are incomparable.
//
// This is not a total order: callers must not sort by it.
func (v Vector3[T]) PartialCompare(o Vector3[T]) (cmp int, ok bool) {
	var less, greater bool
	for _, pair := range [3][2]T{{v.X, o.X}, {v.Y, o.Y}, {v.Z, o.Z}} {
		a, b := pair[0], pair[1]
		switch {
		case a < b:
			less = true
		case a > b:
			greater = true
		case a == b:
		default:
			return 0, false // NaN
		}
	}

	switch {
	case less && greater:
		return 0, false
	case less:
		return -1, true
	case greater:
		return 1, true
	default:
		return 0, true
	}
}
