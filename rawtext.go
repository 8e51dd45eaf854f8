package htmlkit

// parseRawText consumes the body of a <script> or <style> element.
// Nested tags are not markup here: a '<' only matters when it starts a
// comment or the matching end tag, so "</script>" sequences inside a
// comment are preserved verbatim as part of that comment's text. Text
// runs are taken as-is, with no entity decoding.
func parseRawText(c *cursor, tag string) []Node {
	var nodes []Node
	textStart := c.pos

	flush := func(end int) {
		if end > textStart {
			nodes = append(nodes, textNode(c.s[textStart:end]))
		}
	}

	for !c.eof() {
		if c.hasPrefix("<!--") {
			flush(c.pos)
			nodes = append(nodes, commentNode(c.readCommentBody()))
			textStart = c.pos
			continue
		}
		if c.peek() == '<' && endTagAhead(c, tag) {
			break
		}
		c.pos++
	}

	flush(c.pos)
	c.endTag(tag)
	return nodes
}

// endTagAhead reports whether the matching end tag for tag starts at the
// cursor's current position, without consuming it.
func endTagAhead(c *cursor, tag string) bool {
	save := c.mark()
	ok := c.endTag(tag)
	c.reset(save)
	return ok
}
