// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvgeom/coords"
	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector3"
)

var (
	// ErrEmptyPoint indicates a Point with none of its three forms set.
	ErrEmptyPoint = errors.New("batch: point has no coordinates")

	// ErrAmbiguousPoint indicates a Point with more than one form set.
	ErrAmbiguousPoint = errors.New("batch: point has more than one coordinate form")
)

// RecordError ties a conversion failure to the index of the input point.
type RecordError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *RecordError) Error() string {
	return fmt.Sprintf("batch: point %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *RecordError) Unwrap() error { return e.Err }

// Point is a coordinate in one of three forms. Exactly one field must be
// non-nil; the struct tags match the job file layout.
type Point[T numeric.Float] struct {
	Cartesian   *vector3.Vector3[T]    `json:"cartesian,omitempty" yaml:"cartesian,omitempty"`
	Cylindrical *coords.Cylindrical[T] `json:"cylindrical,omitempty" yaml:"cylindrical,omitempty"`
	Spherical   *coords.Spherical[T]   `json:"spherical,omitempty" yaml:"spherical,omitempty"`
}

// Cartesian wraps v as a Point.
func Cartesian[T numeric.Float](v vector3.Vector3[T]) Point[T] {
	return Point[T]{Cartesian: &v}
}

// Cylindrical wraps c as a Point.
func Cylindrical[T numeric.Float](c coords.Cylindrical[T]) Point[T] {
	return Point[T]{Cylindrical: &c}
}

// Spherical wraps s as a Point.
func Spherical[T numeric.Float](s coords.Spherical[T]) Point[T] {
	return Point[T]{Spherical: &s}
}

// Form names the populated field ("cartesian", "cylindrical", "spherical"),
// or "" when the point is empty or ambiguous.
func (p Point[T]) Form() string {
	if p.count() != 1 {
		return ""
	}
	switch {
	case p.Cartesian != nil:
		return "cartesian"
	case p.Cylindrical != nil:
		return "cylindrical"
	default:
		return "spherical"
	}
}

// Validate checks that exactly one form is set.
func (p Point[T]) Validate() error {
	switch p.count() {
	case 0:
		return ErrEmptyPoint
	case 1:
		return nil
	default:
		return ErrAmbiguousPoint
	}
}

// Resolve converts p to a Cartesian vector through the checked conversions.
func (p Point[T]) Resolve() (vector3.Vector3[T], error) {
	if err := p.Validate(); err != nil {
		return vector3.Vector3[T]{}, err
	}
	switch {
	case p.Cartesian != nil:
		return *p.Cartesian, p.Cartesian.Validate()
	case p.Cylindrical != nil:
		return vector3.CheckedFromCylindrical(p.Cylindrical)
	default:
		return vector3.CheckedFromSpherical(p.Spherical)
	}
}

func (p Point[T]) count() int {
	n := 0
	if p.Cartesian != nil {
		n++
	}
	if p.Cylindrical != nil {
		n++
	}
	if p.Spherical != nil {
		n++
	}
	return n
}

// ConvertPoint changes the numeric kind of p, keeping its form.
func ConvertPoint[U, T numeric.Float](p Point[T]) Point[U] {
	var out Point[U]
	if p.Cartesian != nil {
		v := vector3.Convert[U](*p.Cartesian)
		out.Cartesian = &v
	}
	if p.Cylindrical != nil {
		c := coords.NewCylindrical(U(p.Cylindrical.Radius), U(p.Cylindrical.Azimuth), U(p.Cylindrical.Height))
		out.Cylindrical = &c
	}
	if p.Spherical != nil {
		s := coords.NewSpherical(U(p.Spherical.Radius), U(p.Spherical.AzimuthalAngle), U(p.Spherical.PolarAngle))
		out.Spherical = &s
	}
	return out
}

// ConvertPoints applies ConvertPoint to every element.
func ConvertPoints[U, T numeric.Float](ps []Point[T]) []Point[U] {
	out := make([]Point[U], len(ps))
	for i, p := range ps {
		out[i] = ConvertPoint[U](p)
	}
	return out
}
