package msgfmt

import "errors"

var (
	ErrUnbalancedBraces = errors.New("msgfmt: unbalanced braces")
	ErrEmptyHandlerName = errors.New("msgfmt: handler name cannot be empty")
	ErrNilHandler       = errors.New("msgfmt: handler cannot be nil")
)
