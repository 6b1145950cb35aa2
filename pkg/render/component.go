package render

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
)

// ComponentOption configures Component rendering.
type ComponentOption func(*componentOptions)

type componentOptions struct {
	placeholder func(msgfmt.PlaceholderNode) templ.Component
}

// WithPlaceholderComponent substitutes a custom component per placeholder
// node, letting callers wrap substituted values in markup (a <strong> tag, a
// link) while literal text renders as-is. The hook sees the node's key and
// type, so components can differ per placeholder.
func WithPlaceholderComponent(fn func(msgfmt.PlaceholderNode) templ.Component) ComponentOption {
	return func(o *componentOptions) {
		o.placeholder = fn
	}
}

// Component adapts a node tree to a templ.Component that streams the
// rendered message. Text and placeholder leaves are HTML-escaped; nested
// node sequences produced by recursing handlers render recursively.
func Component(nodes []msgfmt.Node, opts ...ComponentOption) templ.Component {
	o := &componentOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderComponent(ctx, w, nodes, o)
	})
}

func renderComponent(ctx context.Context, w io.Writer, nodes []msgfmt.Node, o *componentOptions) error {
	for _, n := range nodes {
		switch n := n.(type) {
		case msgfmt.TextNode:
			if _, err := io.WriteString(w, html.EscapeString(n.Value)); err != nil {
				return err
			}
		case msgfmt.PlaceholderNode:
			if nested, ok := n.Value.([]msgfmt.Node); ok {
				if err := renderComponent(ctx, w, nested, o); err != nil {
					return err
				}
				continue
			}
			if o.placeholder != nil {
				if err := o.placeholder(n).Render(ctx, w); err != nil {
					return err
				}
				continue
			}
			if _, err := io.WriteString(w, html.EscapeString(leafString(n.Value))); err != nil {
				return err
			}
		}
	}
	return nil
}
