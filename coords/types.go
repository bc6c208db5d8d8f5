// SPDX-License-Identifier: MIT

package coords

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/numeric"
)

// Cylindrical is a point expressed as radial distance from the Z axis, an
// azimuth around it and a height along it.
type Cylindrical[T numeric.Float] struct {
	Radius  T `json:"radius" yaml:"radius"`
	Azimuth T `json:"azimuth" yaml:"azimuth"`
	Height  T `json:"height" yaml:"height"`
}

// NewCylindrical returns Cylindrical{radius, azimuth, height}.
func NewCylindrical[T numeric.Float](radius, azimuth, height T) Cylindrical[T] {
	return Cylindrical[T]{Radius: radius, Azimuth: azimuth, Height: height}
}

// String renders the point as "cyl(r, az, h)".
func (c Cylindrical[T]) String() string {
	return fmt.Sprintf("cyl(%v, %v, %v)", c.Radius, c.Azimuth, c.Height)
}

// Spherical is a point expressed as radial distance from the origin, an
// azimuthal angle in the horizontal plane and a polar angle from +Z.
type Spherical[T numeric.Float] struct {
	Radius         T `json:"radius" yaml:"radius"`
	AzimuthalAngle T `json:"azimuthal_angle" yaml:"azimuthal_angle"`
	PolarAngle     T `json:"polar_angle" yaml:"polar_angle"`
}

// NewSpherical returns Spherical{radius, azimuthal, polar}.
func NewSpherical[T numeric.Float](radius, azimuthal, polar T) Spherical[T] {
	return Spherical[T]{Radius: radius, AzimuthalAngle: azimuthal, PolarAngle: polar}
}

// String renders the point as "sph(r, az, pol)".
func (s Spherical[T]) String() string {
	return fmt.Sprintf("sph(%v, %v, %v)", s.Radius, s.AzimuthalAngle, s.PolarAngle)
}
