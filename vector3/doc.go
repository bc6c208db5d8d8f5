// SPDX-License-Identifier: MIT

// Package vector3 provides Vector3, a three-dimensional point/vector generic
// over float32 and float64, with its algebra and conversions from
// cylindrical and spherical coordinates.
//
// 🚀 Axes
//
//	X: left (−) / right (+)
//	Y: out (−) / in (+), i.e. the "forward" axis
//	Z: down (−) / up (+)
//
//	        +Z (Up)
//	         │  +Y (Forward)
//	         │ ╱
//	         │╱
//	─────────┼────────── +X (Right)
//	        ╱│
//	       ╱ │
//
// ✨ Key features:
//   - value semantics: every operation returns a new Vector3, nothing mutates
//   - exact per-kind direction tables (Origin32() … Right64(), DirectionsFor)
//   - Neg, Add, Sub, Div, Scale, Dot, Cross, Magnitude, QuickMagnitude, AngleTo
//   - FromCylindrical / FromSpherical, each with a pointer twin (…Ref)
//   - ToCylindrical / ToSpherical inverses
//   - "(x, y, z)" rendering, tuple/array interop, json/yaml field tags x, y, z
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgeom/vector3"
//
//	a := vector3.New(1.0, 2.0, 3.0)
//	n := a.Cross(vector3.Up64())                     // perpendicular to both
//	θ := vector3.Up64().AngleTo(vector3.Forward64()) // π/2
//
// Floating-point policy:
//
//	The default operations never return errors. Division by zero, the angle
//	to a zero-length vector and similar degenerate inputs yield NaN or ±Inf
//	exactly as IEEE-754 dictates. The Checked* variants (checked.go) wrap
//	the same arithmetic and report those cases as sentinel errors instead.
//
// Concurrency:
//
//	Vector3 is an immutable value type; sharing it across goroutines needs
//	no synchronization.
package vector3
