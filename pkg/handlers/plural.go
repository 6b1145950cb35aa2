package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
	"github.com/dmitrymomot/msgfmt/pkg/plural"
)

// Plural returns the "plural" type handler. The format argument lists
// branches keyed by exact counts or CLDR categories:
//
//	{count, plural, =0 {no items} one {# item} other {# items}}
//
// An exact `=N` branch wins over the category selected by the locale's
// cardinal rule; absent categories fall back along the CLDR chain ending at
// "other". `#` inside the chosen branch is replaced with the locale-formatted
// count, and the branch text is resolved recursively, so it may contain
// further placeholder blocks.
func Plural() msgfmt.Handler {
	return pluralHandler(plural.ForLanguage)
}

// SelectOrdinal returns the "selectordinal" type handler. It behaves like
// Plural but selects branches with the locale's ordinal rule:
//
//	{pos, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}
func SelectOrdinal() msgfmt.Handler {
	return pluralHandler(plural.OrdinalForLanguage)
}

func pluralHandler(ruleFor func(lang string) plural.Rule) msgfmt.Handler {
	return func(value any, format string, values msgfmt.M, locale string, recurse msgfmt.Recurse) (any, error) {
		n, ok := toInt(value)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T)", ErrNotANumber, value, value)
		}

		branches, err := parseBranches(format)
		if err != nil {
			return nil, err
		}

		b, ok := find(branches, "="+strconv.Itoa(n))
		if !ok {
			form := ruleFor(locale)(n)
			b, ok = find(branches, append([]string{form}, plural.FallbackForms(form)...)...)
		}
		if !ok {
			// No applicable branch: fall back to the raw count.
			return value, nil
		}

		count := FormatFor(locale).FormatInteger(int64(n))
		return recurse(strings.ReplaceAll(b.text, "#", count), values, locale)
	}
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		return n, err == nil
	default:
		return 0, false
	}
}
