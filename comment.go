package htmlkit

import "strings"

// readCommentBody consumes a "<!--...-->" run assuming the caller has
// already confirmed the "<!--" prefix is present, and returns the raw
// (undecoded) content between the delimiters. A missing terminator
// consumes to end-of-input.
func (c *cursor) readCommentBody() string {
	c.pos += len("<!--")
	idx := strings.Index(c.rest(), "-->")
	if idx == -1 {
		content := c.rest()
		c.pos = len(c.s)
		return content
	}
	content := c.s[c.pos : c.pos+idx]
	c.pos += idx + len("-->")
	return content
}

// parseComment matches "<!--" raw-content "-->".
func parseComment(c *cursor) (Node, bool) {
	if !c.hasPrefix("<!--") {
		return Node{}, false
	}
	return commentNode(c.readCommentBody()), true
}
