package htmlkit

// CreateIDDict indexes every element with an id attribute by that id, in
// document order within each bucket. Elements sharing an id all
// contribute to the same bucket.
func CreateIDDict(nodes []Node) map[string][]*Node {
	dict := make(map[string][]*Node)
	walkElements(nodes, func(n *Node) {
		id := GetID(n)
		if id == "" {
			return
		}
		dict[id] = append(dict[id], n)
	})
	return dict
}

// CreateTagDict groups every element by tag name, in document order
// within each group.
func CreateTagDict(nodes []Node) map[string][]*Node {
	dict := make(map[string][]*Node)
	walkElements(nodes, func(n *Node) {
		dict[n.TagName] = append(dict[n.TagName], n)
	})
	return dict
}

// CreateClassDict groups every element by each of its class tokens, in
// document order within each group. An element with multiple classes
// appears once per class.
func CreateClassDict(nodes []Node) map[string][]*Node {
	dict := make(map[string][]*Node)
	walkElements(nodes, func(n *Node) {
		for _, c := range GetClassList(n) {
			dict[c] = append(dict[c], n)
		}
	})
	return dict
}
