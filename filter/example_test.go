package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-anomaly/filter"
)

func ExampleAverage() {
	out, _ := filter.Average([]float64{1, 2, 3, 4, 5}, 3)
	fmt.Println(out)
	// Output:
	// [1 1.5 2 3 4]
}

func ExampleMedian() {
	out, _ := filter.Median([]float64{5, 1, 3, 9, 2}, 3, false)
	fmt.Println(out)
	// Output:
	// [5 3 3 3 2]
}
