package htmlkit

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// elementEnv is the variable set exposed to expressions passed to
// MatchElements.
type elementEnv struct {
	Tag   string            `expr:"tag"`
	Attrs map[string]string `expr:"attrs"`
	ID    string            `expr:"id"`
	Class []string          `expr:"class"`
}

func newElementEnv(n *Node) elementEnv {
	attrs := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		if _, exists := attrs[a.Name]; !exists {
			attrs[a.Name] = a.Value
		}
	}
	return elementEnv{
		Tag:   n.TagName,
		Attrs: attrs,
		ID:    GetID(n),
		Class: GetClassList(n),
	}
}

// MatchElements returns, in document order, every element for which code
// evaluates to a truthy value. code is an expr-lang expression evaluated
// once per element against a fresh environment exposing tag, attrs
// (first value wins for repeated attribute names), id and class.
//
// A non-boolean result does not fail the whole query; it is judged by
// truthiness instead: nil, false and the empty string are falsy (so e.g.
// attrs.missing, which evaluates to "" on an element lacking that
// attribute, does not match), everything else is truthy. A code
// that fails to compile is a programmer error in the query itself, not a
// property of any particular document, so it is returned as an error
// rather than silently matching nothing.
func MatchElements(nodes []Node, code string) ([]*Node, error) {
	program, err := expr.Compile(code, expr.Env(elementEnv{}))
	if err != nil {
		return nil, fmt.Errorf("htmlkit: compiling query: %w", err)
	}

	var matched []*Node
	var walkErr error
	walkElements(nodes, func(n *Node) {
		if walkErr != nil {
			return
		}
		out, err := expr.Run(program, newElementEnv(n))
		if err != nil {
			walkErr = fmt.Errorf("htmlkit: evaluating query on <%s>: %w", n.TagName, err)
			return
		}
		if truthy(out) {
			matched = append(matched, n)
		}
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return matched, nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	default:
		return true
	}
}
