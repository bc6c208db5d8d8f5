// SPDX-License-Identifier: MIT
// Package: vector3
//
// Purpose:
//   - Provide the seven named directions (Origin, Up, Down, Forward, Back,
//     Left, Right) for every supported numeric kind.
//
// Contract:
//   - One explicit table per numeric.Kind; the values are literals, never
//     derived through generic arithmetic.
//   - Both tables are unexported package-level composite literals, laid out
//     statically with no init(); callers only ever receive copies.

package vector3

import "github.com/katalvlaran/lvgeom/numeric"

// Directions is the table of named directions for one numeric kind.
// Every entry is a unit vector except Origin, which is the zero vector.
type Directions[T numeric.Float] struct {
	Origin  Vector3[T]
	Up      Vector3[T]
	Down    Vector3[T]
	Forward Vector3[T]
	Back    Vector3[T]
	Left    Vector3[T]
	Right   Vector3[T]
}

// directions32 and directions64 are the per-kind tables behind DirectionsFor
// and the Origin32..Right64 accessors. They are unexported so no caller can
// reassign them; every accessor hands out a copy.
var (
	directions32 = Directions[float32]{
		Origin:  Vector3[float32]{X: 0, Y: 0, Z: 0},
		Up:      Vector3[float32]{X: 0, Y: 0, Z: 1},
		Down:    Vector3[float32]{X: 0, Y: 0, Z: -1},
		Forward: Vector3[float32]{X: 0, Y: 1, Z: 0},
		Back:    Vector3[float32]{X: 0, Y: -1, Z: 0},
		Left:    Vector3[float32]{X: -1, Y: 0, Z: 0},
		Right:   Vector3[float32]{X: 1, Y: 0, Z: 0},
	}
	directions64 = Directions[float64]{
		Origin:  Vector3[float64]{X: 0, Y: 0, Z: 0},
		Up:      Vector3[float64]{X: 0, Y: 0, Z: 1},
		Down:    Vector3[float64]{X: 0, Y: 0, Z: -1},
		Forward: Vector3[float64]{X: 0, Y: 1, Z: 0},
		Back:    Vector3[float64]{X: 0, Y: -1, Z: 0},
		Left:    Vector3[float64]{X: -1, Y: 0, Z: 0},
		Right:   Vector3[float64]{X: 1, Y: 0, Z: 0},
	}
)

// Single-precision directions.

// Origin32 returns (0, 0, 0) as float32.
func Origin32() Vector3[float32] { return directions32.Origin }

// Up32 returns (0, 0, 1) as float32.
func Up32() Vector3[float32] { return directions32.Up }

// Down32 returns (0, 0, -1) as float32.
func Down32() Vector3[float32] { return directions32.Down }

// Forward32 returns (0, 1, 0) as float32.
func Forward32() Vector3[float32] { return directions32.Forward }

// Back32 returns (0, -1, 0) as float32.
func Back32() Vector3[float32] { return directions32.Back }

// Left32 returns (-1, 0, 0) as float32.
func Left32() Vector3[float32] { return directions32.Left }

// Right32 returns (1, 0, 0) as float32.
func Right32() Vector3[float32] { return directions32.Right }

// Double-precision directions.

// Origin64 returns (0, 0, 0) as float64.
func Origin64() Vector3[float64] { return directions64.Origin }

// Up64 returns (0, 0, 1) as float64.
func Up64() Vector3[float64] { return directions64.Up }

// Down64 returns (0, 0, -1) as float64.
func Down64() Vector3[float64] { return directions64.Down }

// Forward64 returns (0, 1, 0) as float64.
func Forward64() Vector3[float64] { return directions64.Forward }

// Back64 returns (0, -1, 0) as float64.
func Back64() Vector3[float64] { return directions64.Back }

// Left64 returns (-1, 0, 0) as float64.
func Left64() Vector3[float64] { return directions64.Left }

// Right64 returns (1, 0, 0) as float64.
func Right64() Vector3[float64] { return directions64.Right }

// DirectionsFor returns the direction table of T's kind. Named types over
// float32/float64 receive the table of their underlying kind; the entries
// are 0 and ±1, so the conversion is exact.
//
// Complexity: O(1).
func DirectionsFor[T numeric.Float]() Directions[T] {
	if numeric.KindOf[T]() == numeric.Float32 {
		return castDirections[T](directions32)
	}

	return castDirections[T](directions64)
}

// Origin returns (0, 0, 0) of kind T.
func Origin[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Origin }

// Up returns (0, 0, 1) of kind T.
func Up[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Up }

// Down returns (0, 0, -1) of kind T.
func Down[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Down }

// Forward returns (0, 1, 0) of kind T.
func Forward[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Forward }

// Back returns (0, -1, 0) of kind T.
func Back[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Back }

// Left returns (-1, 0, 0) of kind T.
func Left[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Left }

// Right returns (1, 0, 0) of kind T.
func Right[T numeric.Float]() Vector3[T] { return DirectionsFor[T]().Right }

// All returns the seven directions in declaration order.
func (d Directions[T]) All() [7]Vector3[T] {
	return [7]Vector3[T]{d.Origin, d.Up, d.Down, d.Forward, d.Back, d.Left, d.Right}
}

func castDirections[T, S numeric.Float](d Directions[S]) Directions[T] {
	return Directions[T]{
		Origin:  Convert[T](d.Origin),
		Up:      Convert[T](d.Up),
		Down:    Convert[T](d.Down),
		Forward: Convert[T](d.Forward),
		Back:    Convert[T](d.Back),
		Left:    Convert[T](d.Left),
		Right:   Convert[T](d.Right),
	}
}
