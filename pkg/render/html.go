package render

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
)

var (
	strictPolicy *bluemonday.Policy
	safePolicy   *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// SafePolicy allows basic formatting tags in message text
		safePolicy = bluemonday.NewPolicy()
		safePolicy.AllowStandardURLs()
		safePolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
		)
		safePolicy.AllowAttrs("href").OnElements("a")
		safePolicy.RequireNoFollowOnLinks(true)
	})
}

// SafePolicy returns the shared policy allowing basic formatting tags
// (p, a, strong, em, lists, code). Dangerous elements and attributes,
// including scripts, event handlers, and javascript: URLs, are stripped.
func SafePolicy() *bluemonday.Policy {
	initPolicies()
	return safePolicy
}

// StrictPolicy returns the shared policy that strips all HTML.
func StrictPolicy() *bluemonday.Policy {
	initPolicies()
	return strictPolicy
}

// HTMLOption configures HTML rendering.
type HTMLOption func(*htmlOptions)

type htmlOptions struct {
	policy *bluemonday.Policy
}

// WithPolicy sanitizes literal message text through the given bluemonday
// policy instead of passing it through verbatim. Placeholder-derived values
// are escaped regardless of the policy.
func WithPolicy(policy *bluemonday.Policy) HTMLOption {
	return func(o *htmlOptions) {
		o.policy = policy
	}
}

// Text concatenates the leaf values of a node tree into a plain string.
// Equivalent to Formatter.Format output for the same message.
func Text(nodes []msgfmt.Node) string {
	return msgfmt.Stringify(nodes)
}

// HTML renders a node tree to HTML. Literal message text comes from the
// translation author and passes through verbatim, so translations may carry
// markup; apply WithPolicy to sanitize it when translations are not trusted.
// Values substituted from placeholders are always HTML-escaped, so runtime
// data cannot inject markup. Nested node sequences produced by recursing
// handlers render recursively.
func HTML(nodes []msgfmt.Node, opts ...HTMLOption) string {
	o := &htmlOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var b strings.Builder
	writeHTML(&b, nodes, o)
	return b.String()
}

func writeHTML(b *strings.Builder, nodes []msgfmt.Node, o *htmlOptions) {
	for _, n := range nodes {
		switch n := n.(type) {
		case msgfmt.TextNode:
			if o.policy != nil {
				b.WriteString(o.policy.Sanitize(n.Value))
			} else {
				b.WriteString(n.Value)
			}
		case msgfmt.PlaceholderNode:
			if nested, ok := n.Value.([]msgfmt.Node); ok {
				writeHTML(b, nested, o)
				continue
			}
			b.WriteString(html.EscapeString(leafString(n.Value)))
		}
	}
}

func leafString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
