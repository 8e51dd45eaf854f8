package htmlkit

// parseDoctype matches "<!DOCTYPE" followed by any characters up to the
// first ">", and produces a synthetic DoctypeTagName element. Unlike a
// full HTML5 parser this does not retain the PUBLIC/SYSTEM identifiers —
// nothing in this module's query layer consumes them, and doctype
// contents are discarded entirely.
func (c *cursor) parseDoctype() (Node, bool) {
	save := c.mark()
	if !c.consumePrefixFold("<!doctype") {
		return Node{}, false
	}
	for !c.eof() && c.peek() != '>' {
		c.pos++
	}
	if c.eof() {
		// No terminating '>': total contract still requires progress,
		// but there is no valid doctype here, so back out and let the
		// caller fall back to a text node.
		c.reset(save)
		return Node{}, false
	}
	c.pos++ // consume '>'
	return elementNode(DoctypeTagName, nil, nil), true
}

// consumePrefixFold consumes prefix (given in lowercase) if the remaining
// input matches it ASCII-case-insensitively.
func (c *cursor) consumePrefixFold(prefix string) bool {
	if len(c.rest()) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if toLowerByte(c.s[c.pos+i]) != prefix[i] {
			return false
		}
	}
	c.pos += len(prefix)
	return true
}
