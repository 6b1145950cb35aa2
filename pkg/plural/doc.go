// Package plural provides CLDR plural category rules for cardinal and
// ordinal numbers.
//
// A Rule maps a count to one of the six CLDR categories (zero, one, two,
// few, many, other). Rules are provided per language family and selected by
// ISO 639-1 language code:
//
//	rule := plural.ForLanguage("pl")
//	rule(1)  // "one"
//	rule(3)  // "few"
//	rule(15) // "many"
//
// FallbackForms gives the category chain to try when a message does not
// define a branch for the selected category; every chain ends at "other".
// The handlers and catalog packages build their plural selection on these
// rules.
package plural
