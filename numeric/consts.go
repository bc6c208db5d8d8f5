// SPDX-License-Identifier: MIT

package numeric

import "math"

// Per-kind machine epsilon: the gap between 1 and the next representable
// value. Written as hex literals so the values are exact.
const (
	epsilon32 = 0x1p-23 // 1.1920929e-07
	epsilon64 = 0x1p-52 // 2.220446049250313e-16
)

// Zero returns the additive identity of T.
func Zero[T Float]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Float]() T { return 1 }

// Pi returns π rounded to T.
func Pi[T Float]() T { return T(math.Pi) }

// FracPi2 returns π/2 rounded to T.
func FracPi2[T Float]() T { return T(math.Pi / 2) }

// Epsilon returns the machine epsilon of T's kind.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(epsilon32)
	}

	return T(epsilon64)
}
