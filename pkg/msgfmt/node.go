package msgfmt

import (
	"fmt"
	"strings"
)

// Node is one unit of the structured formatting result. It is either a
// TextNode carrying literal message text or a PlaceholderNode carrying the
// resolved value of one placeholder block. The slice returned by Process
// preserves the left-to-right order of the source message.
type Node interface {
	node()
}

// TextNode is literal text taken from the source message, untouched by
// substitution.
type TextNode struct {
	Value string
}

// PlaceholderNode is the result of resolving one placeholder block. Value
// holds the raw looked-up value, a handler-returned value, or a nested []Node
// when the handler re-entered the formatter. Type is empty for plain {key}
// blocks.
type PlaceholderNode struct {
	Value any
	Key   string
	Type  string
}

func (TextNode) node()        {}
func (PlaceholderNode) node() {}

// Flatten walks nodes in order and returns their leaf values. Nested node
// sequences produced by recursing handlers are flattened in place.
func Flatten(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case TextNode:
			out = append(out, n.Value)
		case PlaceholderNode:
			if nested, ok := n.Value.([]Node); ok {
				out = append(out, Flatten(nested)...)
				continue
			}
			out = append(out, n.Value)
		}
	}
	return out
}

// Stringify concatenates the leaf values of nodes into a single string.
// Nil values contribute nothing; non-string values are rendered with %v.
func Stringify(nodes []Node) string {
	var b strings.Builder
	for _, v := range Flatten(nodes) {
		switch v := v.(type) {
		case nil:
		case string:
			b.WriteString(v)
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	return b.String()
}
