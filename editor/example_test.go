package editor_test

import (
	"fmt"

	"github.com/tintlab/tint/coloring"
	"github.com/tintlab/tint/editor"
)

// Example builds a triangle entirely through pointer events, then colors it.
func Example() {
	ed := editor.New()

	// Three clicks on empty space: vertices 0, 1, 2.
	ed = ed.PointerDown(50, 50)
	ed = ed.PointerDown(250, 50)
	ed = ed.PointerDown(150, 200)

	// Select-then-click pairs: edges 0—1, 1—2, 2—0.
	ed = ed.PointerDown(50, 50).PointerUp()
	ed = ed.PointerDown(250, 50).PointerUp()
	ed = ed.PointerDown(250, 50).PointerUp()
	ed = ed.PointerDown(150, 200).PointerUp()
	ed = ed.PointerDown(150, 200).PointerUp()
	ed = ed.PointerDown(50, 50).PointerUp()

	res, err := coloring.ColorAll(ed.Graph)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", ed.Graph.VertexCount())
	fmt.Println("edges:", ed.Graph.EdgeCount())
	fmt.Println("colors:", res.ColorCount)
	// Output:
	// vertices: 3
	// edges: 3
	// colors: 3
}
