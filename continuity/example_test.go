package continuity_test

import (
	"fmt"
	"math"

	"github.com/odrellan/limitkit/continuity"
)

// ExampleCheck classifies the floor function at an integer step.
func ExampleCheck() {
	res, err := continuity.Check(math.Floor, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("continuous=%t kind=%s\n", res.Continuous, res.Kind)
	// Output:
	// continuous=false kind=jump
}

// ExampleCheck_removable classifies the hole of (x²−1)/(x−1).
func ExampleCheck_removable() {
	f := func(x float64) float64 { return (x*x - 1) / (x - 1) }

	res, err := continuity.Check(f, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Kind)
	// Output:
	// removable
}
