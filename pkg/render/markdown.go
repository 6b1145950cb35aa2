package render

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
)

var (
	md     goldmark.Markdown // cached markdown processor
	mdOnce sync.Once
)

// MarkdownHTML converts markdown source (typically the output of
// Formatter.Format for a markdown-authored message) to sanitized HTML.
// The result passes through the safe bluemonday policy, so scripts and
// event handlers surviving the conversion are stripped.
func MarkdownHTML(source string) (string, error) {
	mdOnce.Do(func() {
		md = goldmark.New()
	})

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %s", ErrMarkdown, err)
	}

	return SafePolicy().Sanitize(buf.String()), nil
}
