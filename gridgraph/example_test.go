// File: gridgraph/example_test.go
package gridgraph_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crucible/gridgraph"
)

// ExampleParse builds a grid from digit text and reads a few cells.
func ExampleParse() {
	g, err := gridgraph.Parse("241\n321\n325\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	goal := g.Goal()
	cost, _ := g.CostAt(goal)
	fmt.Printf("%dx%d grid, goal %s costs %d\n", g.Rows(), g.Cols(), goal, cost)
	// Output:
	// 3x3 grid, goal (2,2) costs 5
}

// ExampleParse_malformed shows that every construction failure is a malformed input.
func ExampleParse_malformed() {
	_, err := gridgraph.Parse("12\n3x")
	fmt.Println(errors.Is(err, gridgraph.ErrMalformedInput))
	fmt.Println(err)
	// Output:
	// true
	// gridgraph: malformed input: cell must be a digit 0-9: 'x' at (1,1)
}
