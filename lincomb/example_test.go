package lincomb_test

import (
	"fmt"
	"log"

	"github.com/ffoxdd/advent-of-code-2025/lincomb"
)

// ExampleMinimize reproduces a target reading with the fewest presses of
// two counters: the first adds to component 0, the second to components 1
// and 2 at once.
func ExampleMinimize() {
	basis := [][]int64{
		{1, 0, 0},
		{0, 1, 1},
	}
	target := []int64{2, 3, 3}

	counts, err := lincomb.Minimize(basis, target)
	if err != nil {
		log.Fatalf("solve failed: %v", err)
	}
	fmt.Println(counts)

	// Output:
	// [2 3]
}
