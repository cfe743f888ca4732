package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/lvdsa/sorting"
)

// ExampleChoose prints the dispatch decision for a few shapes.
func ExampleChoose() {
	fmt.Println(sorting.Choose(4, 10))
	fmt.Println(sorting.Choose(4, 80))
	fmt.Println(sorting.Choose(4, 1000))
	fmt.Println(sorting.Choose(32, 1000))

	// Output:
	// insertion
	// selection
	// quick
	// heap
}

// ExampleSort sorts strings in natural order.
func ExampleSort() {
	s := []string{"delta", "alpha", "charlie", "bravo"}
	sorting.Sort(s, sorting.Ascending[string]())
	fmt.Println(s)

	// Output:
	// [alpha bravo charlie delta]
}
