package htmlkit

import "strings"

// FindElement returns the first element in document order, across nodes
// and their descendants, for which match returns true.
func FindElement(nodes []Node, match func(*Node) bool) (*Node, bool) {
	for i := range nodes {
		n := &nodes[i]
		if n.IsElement() && match(n) {
			return n, true
		}
		if n.IsElement() {
			if found, ok := FindElement(n.Children, match); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// FindElements returns every element in document order for which match
// returns true. The returned slice borrows into the input tree: callers
// must not mutate it or the nodes it points into.
func FindElements(nodes []Node, match func(*Node) bool) []*Node {
	var out []*Node
	walkElements(nodes, func(n *Node) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out
}

// MapElements applies f to every element in nodes and returns the
// collected results. Unlike FindElement/FindElements, it operates on the
// top level only: it does not descend into Children.
func MapElements[T any](nodes []Node, f func(*Node) T) []T {
	var out []T
	for i := range nodes {
		if nodes[i].IsElement() {
			out = append(out, f(&nodes[i]))
		}
	}
	return out
}

// FilterElements returns every top-level element in nodes for which keep
// returns true. It does not descend into Children.
func FilterElements(nodes []Node, keep func(*Node) bool) []*Node {
	var out []*Node
	for i := range nodes {
		n := &nodes[i]
		if n.IsElement() && keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// FilterMapElements applies f to every top-level element in nodes,
// keeping only the results where ok is true. It does not descend into
// Children.
func FilterMapElements[T any](nodes []Node, f func(*Node) (T, bool)) []T {
	var out []T
	for i := range nodes {
		if !nodes[i].IsElement() {
			continue
		}
		if v, ok := f(&nodes[i]); ok {
			out = append(out, v)
		}
	}
	return out
}

func walkElements(nodes []Node, visit func(*Node)) {
	for i := range nodes {
		n := &nodes[i]
		if !n.IsElement() {
			continue
		}
		visit(n)
		walkElements(n.Children, visit)
	}
}

// GetElementsByTagName returns every element with the given tag name
// (compared case-insensitively against the node's already-lowercase
// TagName, so callers may pass any case), in document order.
func GetElementsByTagName(nodes []Node, tag string) []*Node {
	tag = asciiLower(tag)
	return FindElements(nodes, func(n *Node) bool { return n.TagName == tag })
}

// GetElementsByClassName returns every element whose class attribute
// contains class as one of its space-separated tokens.
func GetElementsByClassName(nodes []Node, class string) []*Node {
	return FindElements(nodes, func(n *Node) bool {
		for _, c := range GetClassList(n) {
			if c == class {
				return true
			}
		}
		return false
	})
}

// GetElementByID returns the first element whose id attribute equals id.
func GetElementByID(nodes []Node, id string) (*Node, bool) {
	return FindElement(nodes, func(n *Node) bool {
		v, ok := GetValue(n, "id")
		return ok && v == id
	})
}

// TextContent concatenates the decoded text of n and all of its text-node
// descendants, in document order, skipping comments. For a TextNode it is
// just Text; for an ElementNode it recurses into Children.
func TextContent(n *Node) string {
	var b strings.Builder
	writeTextContent(&b, n)
	return b.String()
}

func writeTextContent(b *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode:
		b.WriteString(n.Text)
	case ElementNode:
		for i := range n.Children {
			writeTextContent(b, &n.Children[i])
		}
	}
}
