package handlers

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
)

// Select returns the "select" type handler. The branch whose selector equals
// the stringified value is chosen, with "other" as the fallback:
//
//	{gender, select, male {He} female {She} other {They}}
//
// The chosen branch text is resolved recursively. When neither the value nor
// "other" matches a branch, the raw value is used unchanged.
func Select() msgfmt.Handler {
	return func(value any, format string, values msgfmt.M, locale string, recurse msgfmt.Recurse) (any, error) {
		branches, err := parseBranches(format)
		if err != nil {
			return nil, err
		}

		want := strings.TrimSpace(fmt.Sprintf("%v", value))
		b, ok := find(branches, want, "other")
		if !ok {
			return value, nil
		}

		return recurse(b.text, values, locale)
	}
}
