package reduce_test

import (
	"fmt"

	"github.com/katalvlaran/destinymatrix/reduce"
)

// ExampleStrategy_Reduce shows how the two strategies treat the same sums.
func ExampleStrategy_Reduce() {
	for _, n := range []int{0, 22, 46, 56} {
		fmt.Println(n, reduce.Modulo.Reduce(n), reduce.DigitSum.Reduce(n))
	}
	// Output:
	// 0 22 22
	// 22 22 22
	// 46 2 10
	// 56 12 11
}
