package htmlkit

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented, human-readable tree of nodes to out, one line
// per node. It is meant for debugging and test failure output, not for
// round-tripping: use WriteXML for that.
func Dump(out io.Writer, nodes []Node) error {
	for i := range nodes {
		if err := dumpNode(out, &nodes[i], 0); err != nil {
			return err
		}
	}
	return nil
}

// DumpString is Dump rendered to a string.
func DumpString(nodes []Node) string {
	var b strings.Builder
	_ = Dump(&b, nodes)
	return b.String()
}

func dumpNode(out io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("  ", depth)

	switch n.Type {
	case TextNode:
		if _, err := fmt.Fprintf(out, "%s#text %q\n", indent, n.Text); err != nil {
			return err
		}
	case CommentNode:
		if _, err := fmt.Fprintf(out, "%s#comment %q\n", indent, n.Text); err != nil {
			return err
		}
	case ElementNode:
		if _, err := fmt.Fprintf(out, "%s<%s%s>\n", indent, n.TagName, dumpAttrs(n.Attrs)); err != nil {
			return err
		}
		for i := range n.Children {
			if err := dumpNode(out, &n.Children[i], depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpAttrs(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}
