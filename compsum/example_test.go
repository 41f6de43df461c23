package compsum_test

import (
	"fmt"

	"github.com/cwbudde/algo-numerics/compsum"
)

func ExampleAccumulator() {
	var acc compsum.Accumulator
	acc.Add(1.0)
	for range 1_000_000 {
		acc.Add(1.0e-20)
	}

	fmt.Printf("total = %.14e\n", acc.Total())

	// Output:
	// total = 1.00000000000001e+00
}

func ExampleSum() {
	fmt.Println(compsum.Sum([]float64{0.1, 0.2, 0.3}))
	// Output:
	// 0.6
}
