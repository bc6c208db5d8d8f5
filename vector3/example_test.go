package vector3_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/coords"
	"github.com/katalvlaran/lvgeom/vector3"
)

// ExampleVector3_Cross builds a surface normal from two edges of a triangle.
func ExampleVector3_Cross() {
	a := vector3.New(0.0, 0.0, 0.0)
	b := vector3.New(2.0, 0.0, 0.0)
	c := vector3.New(0.0, 3.0, 0.0)

	n := b.Sub(a).Cross(c.Sub(a))
	fmt.Println("normal:", n)
	fmt.Println("area:", n.Magnitude()/2)
	// Output:
	// normal: (0, 0, 6)
	// area: 3
}

// ExampleVector3_AngleTo measures the angle between the named directions.
func ExampleVector3_AngleTo() {
	fmt.Printf("%.4f\n", vector3.Up64().AngleTo(vector3.Forward64()))
	fmt.Printf("%.4f\n", vector3.Up64().AngleTo(vector3.Down64()))
	// Output:
	// 1.5708
	// 3.1416
}

// ExampleFromCylindrical converts a point on a cylinder of radius 2.
func ExampleFromCylindrical() {
	c := coords.NewCylindrical(2.0, math.Pi/2, 5.0)
	v := vector3.FromCylindrical(c)
	fmt.Printf("(%.3f, %.3f, %.3f)\n", v.X, v.Y, v.Z)
	// Output:
	// (0.000, 2.000, 5.000)
}

// ExampleFromSpherical shows the pole degeneracy: with a polar angle of 0
// the azimuthal angle is irrelevant.
func ExampleFromSpherical() {
	for _, az := range []float32{0, 0.5, 1} {
		v := vector3.FromSpherical(coords.NewSpherical[float32](1, az, 0))
		fmt.Printf("(%.1f, %.1f, %.1f)\n", v.X, v.Y, v.Z)
	}
	// Output:
	// (0.0, 0.0, 1.0)
	// (0.0, 0.0, 1.0)
	// (0.0, 0.0, 1.0)
}

// ExampleVector3_QuickMagnitude ranks points by distance without square roots.
func ExampleVector3_QuickMagnitude() {
	target := vector3.New(1.0, 1.0, 0.0)
	best, bestD := vector3.Origin64(), math.Inf(1)
	for _, p := range []vector3.Vector3[float64]{
		vector3.New(5.0, 5.0, 5.0),
		vector3.New(1.0, 2.0, 0.0),
		vector3.New(-1.0, 0.0, 0.0),
	} {
		if d := p.Sub(target).QuickMagnitude(); d < bestD {
			best, bestD = p, d
		}
	}
	fmt.Println(best)
	// Output:
	// (1, 2, 0)
}
