package htmlkit

// Parse turns an input string into a document-order sequence of top-level
// Nodes. It never fails: ill-formed markup degrades to a best-effort tree
// rather than an error.
//
// Parsing is recursive-descent. Each level is parameterized by the tag
// name of its enclosing element ("" at the top level), which is all
// isInvalidNest needs to decide when an unclosed optional-end-tag element
// must close implicitly.
func Parse(input string) []Node {
	c := &cursor{s: input}
	nodes := parseChildren(c, "")
	// At the top level only an end tag that closes no open element can
	// stop parseChildren before EOF; it is discarded and parsing resumes.
	for !c.eof() {
		if _, ok := c.generalEndTag(); !ok {
			break
		}
		nodes = append(nodes, parseChildren(c, "")...)
	}
	return nodes
}

// parseChildren repeatedly parses a node at this level until none matches,
// then returns. The optional end tag belonging to parentTagName (if any)
// is consumed by the caller, not here.
func parseChildren(c *cursor, parentTagName string) []Node {
	var nodes []Node
	for !c.eof() {
		n, ok := parseNode(c, parentTagName)
		if !ok {
			break
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// parseNode tries, in order: doctype, comment, element, text. Exactly one
// of these can match a leading "<!DOCTYPE"/"<!--"/"<letter", and the text
// alternative is a catch-all that fails only when the cursor is already at
// an end tag, at a start tag that this level rejects as invalidly nested,
// or at EOF.
func parseNode(c *cursor, parentTagName string) (Node, bool) {
	if n, ok := c.parseDoctype(); ok {
		return n, true
	}
	if n, ok := parseComment(c); ok {
		return n, true
	}
	if n, ok := parseElement(c, parentTagName); ok {
		return n, true
	}
	return parseText(c)
}

// parseElement matches a start tag and, depending on its kind, either
// stops immediately (self-closing, void) or recurses for children.
//
// Self-closing and raw-text (script/style) tags are accepted wherever they
// appear. For any other tag that would be invalid to nest inside
// parentTagName (the optional-tags table isInvalidNest encodes), the
// attempt is fully backtracked so the enclosing level's loop sees no match
// and closes implicitly, leaving the tag for the ancestor that can
// actually hold it.
func parseElement(c *cursor, parentTagName string) (Node, bool) {
	save := c.mark()
	tag, attrs, selfClosing, ok := c.openTag()
	if !ok {
		return Node{}, false
	}
	if selfClosing {
		return elementNode(tag, attrs, nil), true
	}
	if isRawText(tag) {
		return elementNode(tag, attrs, parseRawText(c, tag)), true
	}
	if isInvalidNest(parentTagName, tag) {
		c.reset(save)
		return Node{}, false
	}
	if isVoid(tag) {
		return elementNode(tag, attrs, nil), true
	}

	children := parseChildren(c, tag)
	c.endTag(tag) // optional; a mismatched or absent end tag is fine
	return elementNode(tag, attrs, children), true
}

// parseText consumes a maximal run of character data, decoding entity
// references as it goes. It stops at any position that looks like the
// start of a doctype, comment, tag or end tag, leaving that to the other
// alternatives. A '<' that doesn't actually start one of those is not a
// parse boundary: it is absorbed into the text run so the parser always
// makes progress instead of rejecting the input.
//
// It fails (returns ok == false) only when it consumes nothing, which
// happens exactly when the cursor sits at a recognized boundary or EOF.
func parseText(c *cursor) (Node, bool) {
	start := c.pos
	for !c.eof() {
		if c.peek() != '<' {
			c.pos++
			continue
		}
		if looksLikeMarkup(c) {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return Node{}, false
	}
	return textNode(decodeEntities(c.s[start:c.pos])), true
}

// looksLikeMarkup reports whether the cursor, currently at '<', begins a
// doctype, comment, start tag or end tag. It never consumes input.
func looksLikeMarkup(c *cursor) bool {
	save := c.mark()
	defer c.reset(save)

	if _, ok := c.parseDoctype(); ok {
		return true
	}
	if c.hasPrefix("<!--") {
		return true
	}
	if _, _, _, ok := c.openTag(); ok {
		return true
	}
	if _, ok := c.generalEndTag(); ok {
		return true
	}
	return false
}
