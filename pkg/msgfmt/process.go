package msgfmt

import (
	"fmt"
	"strings"
)

const (
	// blockSep separates key, type, and format inside a placeholder block.
	blockSep = ','
	// maxBlockParts caps the split at key/type/format; the format argument
	// keeps any further separators.
	maxBlockParts = 3
)

// process scans message left to right, emitting TextNodes for content outside
// placeholder blocks and a PlaceholderNode per block, then recurses on the
// remaining tail. Handler dispatch passes f.Process back in so handlers can
// resolve sub-messages they construct.
func (f *Formatter) process(message string, values M, locale string) ([]Node, error) {
	if message == "" {
		return nil, nil
	}

	open := strings.IndexByte(message, '{')
	if open < 0 {
		return []Node{TextNode{Value: message}}, nil
	}

	closing := matchingBrace(message, open)
	if closing < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnbalancedBraces, message)
	}

	var nodes []Node
	if open > 0 {
		nodes = append(nodes, TextNode{Value: message[:open]})
	}

	parts := splitArgs(message[open+1:closing], blockSep, maxBlockParts)
	var key, typ, format string
	if len(parts) > 0 {
		key = parts[0]
	}
	if len(parts) > 1 {
		typ = parts[1]
	}
	if len(parts) > 2 {
		format = parts[2]
	}

	result := resolveValue(values, key)
	if typ != "" {
		if h, ok := f.handlers[typ]; ok {
			out, err := h(result, format, values, locale, f.Process)
			if err != nil {
				return nil, err
			}
			result = out
		}
	}
	nodes = append(nodes, PlaceholderNode{Key: key, Type: typ, Value: result})

	if tail := message[closing+1:]; tail != "" {
		rest, err := f.process(tail, values, locale)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, rest...)
	}

	return nodes, nil
}

// resolveValue looks up key in values. Missing and nil entries resolve to an
// empty string rather than an error.
func resolveValue(values M, key string) any {
	v, ok := values[key]
	if !ok || v == nil {
		return ""
	}
	return v
}
