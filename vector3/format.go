// SPDX-License-Identifier: MIT

package vector3

import "fmt"

// String renders v as "(x, y, z)", each component in Go's default %v form
// for its kind (shortest representation that round-trips).
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
