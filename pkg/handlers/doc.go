// Package handlers provides the built-in type handlers for the msgfmt
// engine: plural and ordinal selection, value-based select, and locale-aware
// number and date formatting.
//
// Register the full set on a Formatter:
//
//	f, err := msgfmt.New(
//		msgfmt.WithHandlers(handlers.Builtin()),
//	)
//
//	out, _ := f.Format(
//		"You have {count, plural, =0 {no items} one {# item} other {# items}}",
//		msgfmt.M{"count": 3}, "en",
//	)
//	// Output: "You have 3 items"
//
// # Branch Syntax
//
// Plural, selectordinal, and select share a branch grammar in the block's
// format argument: whitespace-separated selector {message} pairs, where the
// message may contain nested placeholder blocks. Branch messages are resolved
// through the engine's recurse callback, so substitution and further handler
// dispatch work inside branches:
//
//	{gender, select, female {She invited {guest}} other {They invited {guest}}}
//
// # Locale Formats
//
// LocaleFormat carries the separators, currency placement, and date layouts
// used by the number and date handlers. Predefined formats exist for common
// locales (EnUS, EnGB, DeDE, FrFR, PlPL, JaJP); FormatFor maps a locale tag
// to one of them, defaulting to EnUS.
package handlers
