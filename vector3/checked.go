// SPDX-License-Identifier: MIT
// Package: vector3
//
// Purpose:
//   - Validating twins of the fast-path operations for callers that prefer
//     an error to a NaN.
//
// Contract:
//   - Each Checked* computes exactly what its unchecked counterpart does;
//     it only adds guards in front.
//   - Guard order: nil → non-finite operands → zero divisor / zero magnitude.

package vector3

import (
	"github.com/katalvlaran/lvgeom/coords"
	"github.com/katalvlaran/lvgeom/numeric"
)

// Validate returns ErrNonFinite if any component is NaN or ±Inf.
func (v Vector3[T]) Validate() error {
	if !v.IsFinite() {
		return vectorErrorf("Validate", ErrNonFinite)
	}

	return nil
}

// CheckedDiv is Div that rejects a zero divisor and non-finite operands.
func (v Vector3[T]) CheckedDiv(s T) (Vector3[T], error) {
	if !v.IsFinite() || !numeric.IsFinite(s) {
		return Vector3[T]{}, vectorErrorf("CheckedDiv", ErrNonFinite)
	}
	if s == 0 {
		return Vector3[T]{}, vectorErrorf("CheckedDiv", ErrZeroDivisor)
	}

	return v.Div(s), nil
}

// CheckedAngleTo is AngleTo that rejects zero-length and non-finite operands.
func (v Vector3[T]) CheckedAngleTo(o Vector3[T]) (T, error) {
	if !v.IsFinite() || !o.IsFinite() {
		return 0, vectorErrorf("CheckedAngleTo", ErrNonFinite)
	}
	if v.IsZero() || o.IsZero() {
		return 0, vectorErrorf("CheckedAngleTo", ErrZeroMagnitude)
	}

	return v.AngleTo(o), nil
}

// CheckedNormalize is Normalize that rejects zero-length and non-finite input.
func (v Vector3[T]) CheckedNormalize() (Vector3[T], error) {
	if !v.IsFinite() {
		return Vector3[T]{}, vectorErrorf("CheckedNormalize", ErrNonFinite)
	}
	if v.IsZero() {
		return Vector3[T]{}, vectorErrorf("CheckedNormalize", ErrZeroMagnitude)
	}

	return v.Normalize(), nil
}

// CheckedFromCylindrical is FromCylindricalRef that rejects a nil pointer
// and NaN or ±Inf fields.
func CheckedFromCylindrical[T numeric.Float](c *coords.Cylindrical[T]) (Vector3[T], error) {
	if c == nil {
		return Vector3[T]{}, vectorErrorf("CheckedFromCylindrical", ErrNilCoordinate)
	}
	if !New(c.Radius, c.Azimuth, c.Height).IsFinite() {
		return Vector3[T]{}, vectorErrorf("CheckedFromCylindrical", ErrNonFinite)
	}

	return FromCylindricalRef(c), nil
}

// CheckedFromSpherical is FromSphericalRef that rejects a nil pointer and
// NaN or ±Inf fields.
func CheckedFromSpherical[T numeric.Float](s *coords.Spherical[T]) (Vector3[T], error) {
	if s == nil {
		return Vector3[T]{}, vectorErrorf("CheckedFromSpherical", ErrNilCoordinate)
	}
	if !New(s.Radius, s.AzimuthalAngle, s.PolarAngle).IsFinite() {
		return Vector3[T]{}, vectorErrorf("CheckedFromSpherical", ErrNonFinite)
	}

	return FromSphericalRef(s), nil
}
