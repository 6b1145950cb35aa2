// Package msgfmt formats messages written in a placeholder-based
// interpolation syntax by substituting runtime values and dispatching typed
// placeholders to pluggable handlers.
//
// Messages contain placeholder blocks of the form {key} or
// {key, type, format}. The formatter locates balanced blocks (the format
// argument may itself contain nested {...} syntax), looks up each key in the
// caller-supplied values map, and produces an ordered, source-tagged result
// tree that downstream renderers can consume. Formatter instances are
// immutable after construction and safe for concurrent use.
//
// # Basic Usage
//
// Create a Formatter and substitute values:
//
//	f, err := msgfmt.New()
//	if err != nil {
//		// handle error
//	}
//
//	out, err := f.Format("Hello {name}!", msgfmt.M{"name": "World"}, "")
//	// Output: "Hello World!"
//
// Keys missing from the values map resolve to an empty string rather than an
// error; an opening brace with no matching closing brace fails with
// ErrUnbalancedBraces.
//
// # Type Handlers
//
// A placeholder may name a registered type handler. The handler receives the
// resolved value, the block's format argument verbatim, and a recurse
// callback that re-enters the formatter on a sub-message the handler builds:
//
//	f, err := msgfmt.New(
//		msgfmt.WithHandler("upper", func(value any, format string, values msgfmt.M, locale string, recurse msgfmt.Recurse) (any, error) {
//			return strings.ToUpper(fmt.Sprintf("%v", value)), nil
//		}),
//	)
//
//	out, _ := f.Format("{name, upper}", msgfmt.M{"name": "ada"}, "")
//	// Output: "ADA"
//
// Blocks naming an unregistered type fall back to the raw resolved value. The
// handlers package provides plural, select, number, and date handlers.
//
// # Structured Results
//
// Process returns the result tree instead of a flat string, so non-string
// renderers can distinguish literal text from substituted content:
//
//	nodes, err := f.Process("Hello {name}!", msgfmt.M{"name": "World"}, "")
//	// nodes: [TextNode{"Hello "}, PlaceholderNode{Key: "name", Value: "World"}, TextNode{"!"}]
//
// Flatten and Stringify walk the tree in source order; the render package
// builds HTML and component output from it.
//
// # Memoization
//
// Repeated Format calls with identical arguments can be served from an
// optional cache:
//
//	f, err := msgfmt.New(
//		msgfmt.WithMemoization(10000),
//	)
//
// The cache is keyed by the exact (message, values, locale) tuple and is
// invisible to callers as long as handlers are referentially transparent.
package msgfmt
