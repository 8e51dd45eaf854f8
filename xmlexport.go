package htmlkit

import (
	"io"

	"github.com/beevik/etree"
)

// ToEtree converts nodes into an etree.Document, one child token (element,
// character data or comment) per top-level node, so callers can use etree's own querying, indentation
// and serialization on the result. Doctype nodes are dropped: etree has
// no XML doctype element type, and doctype contents are discarded on
// parse anyway.
func ToEtree(nodes []Node) *etree.Document {
	doc := etree.NewDocument()
	appendChildren(&doc.Element, nodes)
	return doc
}

func appendChildren(parent *etree.Element, nodes []Node) {
	for i := range nodes {
		n := &nodes[i]
		switch n.Type {
		case TextNode:
			parent.CreateText(n.Text)
		case CommentNode:
			parent.CreateComment(n.Text)
		case ElementNode:
			if n.TagName == DoctypeTagName {
				continue
			}
			el := parent.CreateElement(n.TagName)
			for _, a := range n.Attrs {
				if el.SelectAttr(a.Name) != nil {
					continue // first occurrence wins, as in GetValue
				}
				el.CreateAttr(a.Name, a.Value)
			}
			appendChildren(el, n.Children)
		}
	}
}

// WriteXML writes nodes to w as indented XML, via ToEtree.
func WriteXML(w io.Writer, nodes []Node) error {
	doc := ToEtree(nodes)
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
