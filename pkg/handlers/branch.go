package handlers

import (
	"fmt"
	"strings"
)

// branch is one selector/sub-message pair from a plural or select format
// argument, e.g. `one {# item}`.
type branch struct {
	selector string
	text     string
}

// parseBranches parses a format argument of the form
// `selector {text} selector {text} ...` where text may contain nested braced
// blocks. Selectors run up to the next whitespace or opening brace.
func parseBranches(format string) ([]branch, error) {
	var branches []branch
	i, n := 0, len(format)

	for i < n {
		for i < n && isSpace(format[i]) {
			i++
		}
		if i >= n {
			break
		}

		start := i
		for i < n && !isSpace(format[i]) && format[i] != '{' {
			i++
		}
		selector := format[start:i]
		if selector == "" {
			return nil, fmt.Errorf("%w: branch without selector in %q", ErrBadBranchSyntax, format)
		}

		for i < n && isSpace(format[i]) {
			i++
		}
		if i >= n || format[i] != '{' {
			return nil, fmt.Errorf("%w: selector %q has no {...} message in %q", ErrBadBranchSyntax, selector, format)
		}

		i++
		depth := 1
		textStart := i
		for i < n && depth > 0 {
			switch format[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			i++
		}
		if depth != 0 {
			return nil, fmt.Errorf("%w: unclosed brace in branch %q", ErrBadBranchSyntax, selector)
		}

		branches = append(branches, branch{
			selector: selector,
			text:     strings.TrimSpace(format[textStart : i-1]),
		})
	}

	return branches, nil
}

// find returns the first branch whose selector matches any of the given
// selectors, in selector priority order.
func find(branches []branch, selectors ...string) (branch, bool) {
	for _, sel := range selectors {
		for _, b := range branches {
			if b.selector == sel {
				return b, true
			}
		}
	}
	return branch{}, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
