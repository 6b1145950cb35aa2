package handlers

import "github.com/dmitrymomot/msgfmt/pkg/msgfmt"

// Builtin returns the default handler registry: plural, selectordinal,
// select, number, and date.
func Builtin() map[string]msgfmt.Handler {
	return map[string]msgfmt.Handler{
		"plural":        Plural(),
		"selectordinal": SelectOrdinal(),
		"select":        Select(),
		"number":        Number(),
		"date":          Date(),
	}
}
