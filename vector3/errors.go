// SPDX-License-Identifier: MIT
// Package vector3: sentinel errors for the checked variants.
// The unchecked operations never return errors; only Checked* and Validate
// do. Match with errors.Is; messages are prefixed "vector3: ".

package vector3

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDivisor is returned by CheckedDiv when the divisor is exactly zero.
	ErrZeroDivisor = errors.New("vector3: division by zero")

	// ErrZeroMagnitude is returned when an operation needs a direction but
	// was given a zero-length vector (CheckedAngleTo, CheckedNormalize).
	ErrZeroMagnitude = errors.New("vector3: zero-length vector")

	// ErrNonFinite is returned when a component is NaN or ±Inf.
	ErrNonFinite = errors.New("vector3: NaN or Inf component")

	// ErrNilCoordinate is returned when a checked conversion receives a nil pointer.
	ErrNilCoordinate = errors.New("vector3: nil coordinate")
)

// vectorErrorf tags err with the operation name, keeping errors.Is intact.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
