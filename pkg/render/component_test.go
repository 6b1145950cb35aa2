package render_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
	"github.com/dmitrymomot/msgfmt/pkg/render"
)

func renderToString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestComponent(t *testing.T) {
	t.Parallel()

	t.Run("renders escaped text and values", func(t *testing.T) {
		t.Parallel()
		nodes := process(t, "Hello {name}!", msgfmt.M{"name": "<Ada>"})
		out := renderToString(t, render.Component(nodes))
		require.Equal(t, "Hello &lt;Ada&gt;!", out)
	})

	t.Run("placeholder hook wraps substituted values", func(t *testing.T) {
		t.Parallel()
		nodes := process(t, "Hello {name}!", msgfmt.M{"name": "Ada"})

		strong := func(n msgfmt.PlaceholderNode) templ.Component {
			return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
				_, err := io.WriteString(w, "<strong>"+n.Value.(string)+"</strong>")
				return err
			})
		}

		out := renderToString(t, render.Component(nodes, render.WithPlaceholderComponent(strong)))
		require.Equal(t, "Hello <strong>Ada</strong>!", out)
	})

	t.Run("hook sees key and type", func(t *testing.T) {
		t.Parallel()
		nodes := process(t, "{n, count}", msgfmt.M{"n": 5})

		var gotKey, gotType string
		inspect := func(n msgfmt.PlaceholderNode) templ.Component {
			gotKey, gotType = n.Key, n.Type
			return templ.ComponentFunc(func(_ context.Context, _ io.Writer) error {
				return nil
			})
		}

		renderToString(t, render.Component(nodes, render.WithPlaceholderComponent(inspect)))
		require.Equal(t, "n", gotKey)
		require.Equal(t, "count", gotType)
	})

	t.Run("nested sequences render recursively", func(t *testing.T) {
		t.Parallel()
		f, err := msgfmt.New(
			msgfmt.WithHandler("wrap", func(_ any, format string, values msgfmt.M, locale string, recurse msgfmt.Recurse) (any, error) {
				return recurse(format, values, locale)
			}),
		)
		require.NoError(t, err)

		nodes, err := f.Process("{k, wrap, inner {name}}", msgfmt.M{"name": "Ada"}, "")
		require.NoError(t, err)

		out := renderToString(t, render.Component(nodes))
		require.Equal(t, "inner Ada", out)
	})
}
