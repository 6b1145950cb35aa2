package catalog

import "errors"

var (
	ErrEmptyLanguage  = errors.New("catalog: language cannot be empty")
	ErrEmptyNamespace = errors.New("catalog: namespace cannot be empty")
	ErrNilPluralRule  = errors.New("catalog: plural rule cannot be nil")
	ErrNilFormatter   = errors.New("catalog: formatter cannot be nil")
	ErrInvalidFile    = errors.New("catalog: invalid translation file")
)
