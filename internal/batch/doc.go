// SPDX-License-Identifier: MIT

// Package batch converts many coordinates to Cartesian vectors in parallel.
//
// Each Point holds exactly one of three forms (cartesian, cylindrical,
// spherical). Convert resolves every point through the checked vector3
// conversions, fanning the work out over an errgroup bounded by the
// configured worker count, and returns the vectors in input order.
//
// Failure policy:
//   - Invalid records (no form, several forms, NaN/Inf fields) produce a
//     *RecordError carrying the input index.
//   - By default all record errors are collected and returned together
//     (errors.Join) alongside the partial result; failed slots hold the
//     zero vector.
//   - WithFailFast stops scheduling points past the lowest failing index
//     found so far and returns no result. The reported *RecordError is
//     always the lowest-indexed invalid point, whatever order the workers
//     finish in.
//   - Context cancellation always aborts and returns ctx.Err().
package batch
