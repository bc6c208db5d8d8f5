// SPDX-License-Identifier: MIT
// Package: vector3
//
// Purpose:
//   - Cylindrical → Cartesian and Spherical → Cartesian, each by value and
//     by pointer with identical output.
//   - The inverse conversions ToCylindrical and ToSpherical.
//
// Precision:
//   - Sine and cosine come from one numeric.SinCos evaluation per angle.
//   - float32: at an azimuth of π the computed sine is ≈ -8.742278e-8
//     instead of 0 (float32(π) is not π). That error scales with the
//     radius: about 0.56 m at the Earth's radius. It is a property of the
//     input angle, not of the formula, so it is documented rather than
//     corrected.

package vector3

import (
	"github.com/katalvlaran/lvgeom/coords"
	"github.com/katalvlaran/lvgeom/numeric"
)

// FromCylindrical converts c to Cartesian coordinates:
//
//	x = radius·cos(azimuth)
//	y = radius·sin(azimuth)
//	z = height
func FromCylindrical[T numeric.Float](c coords.Cylindrical[T]) Vector3[T] {
	return FromCylindricalRef(&c)
}

// FromCylindricalRef is FromCylindrical reading through a pointer; c is not
// modified.
func FromCylindricalRef[T numeric.Float](c *coords.Cylindrical[T]) Vector3[T] {
	sin, cos := numeric.SinCos(c.Azimuth)

	return Vector3[T]{
		X: c.Radius * cos,
		Y: c.Radius * sin,
		Z: c.Height,
	}
}

// FromSpherical converts s to Cartesian coordinates using the physics
// convention (polar angle from +Z, azimuthal angle from +X toward +Y):
//
//	x = r·sin(polar)·cos(azimuthal)
//	y = r·sin(polar)·sin(azimuthal)
//	z = r·cos(polar)
//
// At the poles (polar = 0 or π) the azimuthal angle has no effect.
func FromSpherical[T numeric.Float](s coords.Spherical[T]) Vector3[T] {
	return FromSphericalRef(&s)
}

// FromSphericalRef is FromSpherical reading through a pointer; s is not
// modified. FromSpherical delegates here, so both are bit-identical.
func FromSphericalRef[T numeric.Float](s *coords.Spherical[T]) Vector3[T] {
	sinAz, cosAz := numeric.SinCos(s.AzimuthalAngle)
	sinPol, cosPol := numeric.SinCos(s.PolarAngle)

	return Vector3[T]{
		X: s.Radius * sinPol * cosAz,
		Y: s.Radius * sinPol * sinAz,
		Z: s.Radius * cosPol,
	}
}

// ToCylindrical returns the cylindrical form of v. The azimuth lies in
// [-π, π]; the origin maps to radius 0, azimuth 0.
func (v Vector3[T]) ToCylindrical() coords.Cylindrical[T] {
	return coords.Cylindrical[T]{
		Radius:  numeric.Hypot(v.X, v.Y),
		Azimuth: numeric.Atan2(v.Y, v.X),
		Height:  v.Z,
	}
}

// ToSpherical returns the spherical form of v (physics convention).
// The polar angle lies in [0, π] and the azimuthal angle in [-π, π].
// The polar angle is computed as atan2(ρ, z) rather than acos(z/r), which
// keeps it well conditioned near the poles and defined at the origin.
func (v Vector3[T]) ToSpherical() coords.Spherical[T] {
	rho := numeric.Hypot(v.X, v.Y)

	return coords.Spherical[T]{
		Radius:         v.Magnitude(),
		AzimuthalAngle: numeric.Atan2(v.Y, v.X),
		PolarAngle:     numeric.Atan2(rho, v.Z),
	}
}
