// SPDX-License-Identifier: MIT

package numeric

// AlmostEqual reports whether a and b agree within tol, measured either
// absolutely or relative to the larger magnitude of the two.
//
// Rules:
//   - a == b is always true (this covers equal infinities).
//   - NaN never compares equal, not even to itself.
//   - Otherwise |a-b| <= tol or |a-b| <= tol*max(|a|,|b|).
//
// Complexity: O(1).
func AlmostEqual[T Float](a, b, tol T) bool {
	if a == b {
		return true
	}
	if IsNaN(a) || IsNaN(b) || IsInf(a) || IsInf(b) {
		return false
	}
	diff := Abs(a - b)
	if diff <= tol {
		return true
	}

	return diff <= tol*max(Abs(a), Abs(b))
}

// RelativeEqual reports whether |a-b| <= tol*max(|a|,|b|). Unlike
// AlmostEqual there is no absolute floor, so values near zero must match
// almost exactly.
func RelativeEqual[T Float](a, b, tol T) bool {
	if a == b {
		return true
	}
	if IsNaN(a) || IsNaN(b) || IsInf(a) || IsInf(b) {
		return false
	}

	return Abs(a-b) <= tol*max(Abs(a), Abs(b))
}
