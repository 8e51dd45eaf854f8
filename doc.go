// Package htmlkit is a forgiving HTML parser. It turns a string of markup
// into a tree of Nodes without ever failing: ill-formed input degrades to
// a best-effort tree rather than an error, which makes it suitable for
// real-world HTML and clipboard payloads from spreadsheets and word
// processors, not just well-formed documents.
//
// The parser implements a deliberately small subset of HTML5 tree
// construction: case-insensitive tags, void elements, a handful of
// optional end tags, raw-text script/style bodies, and named/numeric
// character references. It does not implement the full HTML5
// insertion-mode state machine (templates, foreign content, formatting
// element reconstruction) — see Parse for the exact grammar.
package htmlkit
