package msgfmt

import "fmt"

// M is the values map supplied to formatting calls, mapping placeholder keys
// to arbitrary runtime values.
type M map[string]any

// Recurse re-enters the message processor on a sub-message constructed by a
// type handler, using the same handler registry as the outer call. The core
// supplies it on every handler invocation; handlers that produce scalar
// output are free to ignore it.
type Recurse func(message string, values M, locale string) ([]Node, error)

// Handler transforms the resolved value of a placeholder block that declares
// its type name. It receives the block's format argument verbatim, including
// any nested placeholder syntax the handler itself understands. Errors
// returned by a handler propagate unmodified to the Process/Format caller.
//
// Handlers must be free of shared mutable state to keep concurrent formatting
// safe, and referentially transparent if memoization is enabled.
type Handler func(value any, format string, values M, locale string, recurse Recurse) (any, error)

// Formatter parses placeholder messages and substitutes runtime values.
// It is immutable after creation, making it safe for concurrent use.
type Formatter struct {
	handlers map[string]Handler
	memo     *memoCache
}

// Option configures the Formatter during construction.
type Option func(*Formatter) error

// New creates a new Formatter with the given options. All configuration
// happens during construction, making the instance immutable and thread-safe
// from creation.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		handlers: make(map[string]Handler),
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return f, nil
}

// WithHandler registers a type handler under the given name. Placeholder
// blocks of the form {key, name, format} dispatch to it.
func WithHandler(name string, h Handler) Option {
	return func(f *Formatter) error {
		if name == "" {
			return ErrEmptyHandlerName
		}
		if h == nil {
			return ErrNilHandler
		}
		f.handlers[name] = h
		return nil
	}
}

// WithHandlers registers every handler in the map.
func WithHandlers(handlers map[string]Handler) Option {
	return func(f *Formatter) error {
		for name, h := range handlers {
			if err := WithHandler(name, h)(f); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithMemoization enables caching of Format results keyed by the exact
// (message, values, locale) arguments. maxEntries bounds the cache with LRU
// eviction; zero means unbounded. The cache is a pure performance
// optimization and requires registered handlers to be referentially
// transparent.
func WithMemoization(maxEntries int) Option {
	return func(f *Formatter) error {
		f.memo = newMemoCache(maxEntries)
		return nil
	}
}

// Process parses message and returns the ordered result tree. Literal text
// outside placeholder blocks becomes TextNodes; each {key} or
// {key, type, format} block becomes a PlaceholderNode. values and locale may
// be zero values. An opening brace without a matching closing brace fails
// with ErrUnbalancedBraces.
func (f *Formatter) Process(message string, values M, locale string) ([]Node, error) {
	return f.process(message, values, locale)
}

// Format is the string-producing entry point: it processes message and
// concatenates the flattened result.
func (f *Formatter) Format(message string, values M, locale string) (string, error) {
	if f.memo == nil {
		return f.format(message, values, locale)
	}
	return f.memo.getOrCompute(memoKey(message, values, locale), func() (string, error) {
		return f.format(message, values, locale)
	})
}

func (f *Formatter) format(message string, values M, locale string) (string, error) {
	nodes, err := f.process(message, values, locale)
	if err != nil {
		return "", err
	}
	return Stringify(nodes), nil
}
