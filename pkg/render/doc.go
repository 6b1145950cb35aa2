// Package render turns msgfmt node trees into consumer-facing output:
// plain text, sanitized HTML, markdown-derived HTML, and templ components.
//
// The node tree distinguishes literal message text from substituted values,
// which is what makes safe HTML rendering possible: translation text is
// author-controlled while placeholder values carry runtime data, so HTML
// escapes the latter unconditionally and leaves policy decisions about the
// former to the caller.
//
//	nodes, _ := f.Process("Hello <b>{name}</b>!", msgfmt.M{"name": "<Ada>"}, "")
//
//	render.HTML(nodes)
//	// Output: "Hello <b>&lt;Ada&gt;</b>!"
//
//	render.HTML(nodes, render.WithPolicy(render.StrictPolicy()))
//	// Output: "Hello &lt;Ada&gt;!" with the author markup stripped
//
// MarkdownHTML converts markdown-authored messages after formatting:
//
//	out, _ := f.Format("You have **{count}** new messages", values, "en")
//	htmlBody, _ := render.MarkdownHTML(out)
//
// Component adapts a node tree to a templ.Component for use in templ
// views; WithPlaceholderComponent customizes how substituted values are
// wrapped:
//
//	render.Component(nodes, render.WithPlaceholderComponent(func(n msgfmt.PlaceholderNode) templ.Component {
//		return strongValue(n) // e.g. a templ component wrapping the value in <strong>
//	}))
package render
