package htmlkit_test

import (
	"fmt"

	"github.com/markuptree/htmlkit"
)

func Example() {
	nodes := htmlkit.Parse(`<ul><li>first<li>second</ul>`)
	items := htmlkit.GetElementsByTagName(nodes, "li")
	for _, li := range items {
		fmt.Println(htmlkit.TextContent(li))
	}
	// Output:
	// first
	// second
}
