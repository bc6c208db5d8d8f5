// SPDX-License-Identifier: MIT

// Package lvgeom is a small geometric-primitives library: a 3D vector that
// works the same at float32 and float64, plus conversions from cylindrical
// and spherical coordinates.
//
// 🚀 What is lvgeom?
//
//	A pure-Go library that brings together:
//		• numeric/ : the generic float abstraction (Sqrt, SinCos, Acos, …)
//		• coords/  : Cylindrical and Spherical coordinate shapes
//		• vector3/ : Vector3, its algebra, named directions and conversions
//
// ✨ Why choose lvgeom?
//
//   - One implementation for both precisions, no code generation
//   - Value semantics: nothing mutates, everything is safe to share
//   - IEEE-754 pass-through on the fast path, Checked* twins when you want errors
//   - float32 math stays in float32 (github.com/chewxy/math32)
//
// Quick ASCII example:
//
//	        Up (0,0,1)
//	         │
//	         │   Forward (0,1,0)
//	         │  ╱
//	         │ ╱
//	         └──────── Right (1,0,0)
//
// The cmd/vec3conv tool converts whole job files of coordinates in
// parallel; see its package documentation.
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
