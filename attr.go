package htmlkit

import "strings"

// GetValue returns the value of n's first attribute named name (already
// lowercase) and whether it was present.
func GetValue(n *Node, name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// GetID returns n's id attribute, or "" if absent.
func GetID(n *Node) string {
	v, _ := GetValue(n, "id")
	return v
}

// GetClassList splits n's class attribute on ASCII whitespace, dropping
// empty tokens. It returns nil when class is absent or empty.
func GetClassList(n *Node) []string {
	v, ok := GetValue(n, "class")
	if !ok {
		return nil
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
