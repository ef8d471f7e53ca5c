package layout_test

import (
	"fmt"

	"github.com/matzehuels/mindmap/pkg/layout"
)

func ExampleCalculateNodePosition() {
	root := layout.Point{X: 400, Y: 300}
	for i := 0; i < 3; i++ {
		p := layout.CalculateNodePosition(root, i, 3, 1)
		fmt.Printf("child %d: (%.0f, %.0f)\n", i, p.X, p.Y)
	}
	// Output:
	// child 0: (700, 200)
	// child 1: (700, 300)
	// child 2: (700, 400)
}

func ExampleDefaultNodeSize() {
	s := layout.DefaultNodeSize("A fairly long label for a node")
	fmt.Printf("%.0fx%.0f\n", s.Width, s.Height)
	// Output:
	// 260x60
}
