package smooth_test

import (
	"fmt"

	"github.com/cwbudde/algo-grid/grid"
	"github.com/cwbudde/algo-grid/smooth"
)

func ExampleSmooth121() {
	v, _ := grid.FromValues([]string{"x"}, []int{5}, []float64{1, 2, 3, 4, 5})
	out, _ := smooth.Smooth121(v, []string{"x"})
	fmt.Println(out.Values())

	// Output:
	// [1.25 2 3 4 4.75]
}

func ExampleSmooth121_periodic() {
	v, _ := grid.FromValues([]string{"x"}, []int{4}, []float64{1, 2, 3, 4})
	out, _ := smooth.Smooth121(v, []string{"x"}, smooth.WithPeriodic("x"))
	fmt.Println(out.Values())

	// Output:
	// [2 2 3 3]
}

func ExampleGain() {
	fmt.Printf("dc=%.2f quarter=%.2f\n", smooth.Gain(0, 1), smooth.Gain(0.25, 1))

	// Output:
	// dc=1.00 quarter=0.50
}
