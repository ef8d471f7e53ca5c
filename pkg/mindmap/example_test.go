package mindmap_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mindmap/pkg/mindmap"
)

func Example() {
	ctx := context.Background()
	s := mindmap.Open(ctx, nil, mindmap.WithLogger(log.New(io.Discard)))

	for i := 0; i < 3; i++ {
		s.AddNode(ctx, mindmap.RootID)
	}
	for _, n := range s.Children(mindmap.RootID) {
		fmt.Printf("%s at (%.0f, %.0f)\n", n.Text, n.X, n.Y)
	}
	fmt.Println("connections:", len(s.Connections()))
	// Output:
	// New Node at (700, 200)
	// New Node at (700, 300)
	// New Node at (700, 400)
	// connections: 3
}
