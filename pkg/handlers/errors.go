package handlers

import "errors"

var (
	ErrBadBranchSyntax = errors.New("handlers: malformed branch syntax")
	ErrNotANumber      = errors.New("handlers: value is not a number")
	ErrNotATime        = errors.New("handlers: value is not a time")
	ErrUnknownStyle    = errors.New("handlers: unknown format style")
)
