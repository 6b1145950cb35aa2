package render

import "errors"

var ErrMarkdown = errors.New("render: markdown conversion failed")
