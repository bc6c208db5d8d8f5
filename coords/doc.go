// SPDX-License-Identifier: MIT

// Package coords declares the non-Cartesian coordinate shapes consumed by
// lvgeom's vector3 conversions.
//
// The types here carry data only: construction does not validate, and no
// conversion logic lives in this package. vector3 reads the fields and
// produces Cartesian vectors; vector3 also performs the inverse.
//
// Conventions:
//
//	Cylindrical{Radius, Azimuth, Height}
//	  Radius : distance from the vertical (Z) axis
//	  Azimuth: angle in the horizontal plane, measured from +X toward +Y
//	  Height : offset along Z
//
//	Spherical{Radius, AzimuthalAngle, PolarAngle}   (physics convention)
//	  Radius        : distance from the origin
//	  AzimuthalAngle: angle in the horizontal plane, from +X toward +Y
//	  PolarAngle    : angle down from +Z ("up"); 0 is the north pole
//
// All angles are radians.
package coords
