package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/msgfmt/pkg/handlers"
	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
	"github.com/dmitrymomot/msgfmt/pkg/plural"
)

// M is re-exported so catalog callers don't need to import msgfmt for the
// placeholder values map.
type M = msgfmt.M

// DefaultLang is the default language code used when no default language is
// specified.
const DefaultLang = "en"

// Catalog stores translations and renders them through the msgfmt engine.
// It is immutable after creation, making it safe for concurrent use.
type Catalog struct {
	// Flattened translations map for O(1) lookups.
	// Key format: "lang:namespace:key.path"
	translations map[string]string

	// Plural rules per language, used by Tn's key-suffix selection.
	pluralRules map[string]plural.Rule

	// Formats every translation string; defaults to a formatter carrying the
	// built-in handlers, so translations may use {key, type, format} blocks.
	formatter *msgfmt.Formatter

	// Optional handler called when a translation key is not found.
	// Useful for detecting untranslated keys during development or monitoring
	// gaps in translations.
	missingKeyHandler func(lang, namespace, key string)

	// Default/fallback language.
	defaultLang string

	// Pre-computed list of available languages.
	languages []string
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a new Catalog with the given options. All configuration
// happens during construction, making the instance immutable and
// thread-safe from creation.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]string),
		pluralRules:  make(map[string]plural.Rule),
		defaultLang:  DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if c.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	if c.formatter == nil {
		f, err := msgfmt.New(msgfmt.WithHandlers(handlers.Builtin()))
		if err != nil {
			return nil, err
		}
		c.formatter = f
	}

	if len(c.languages) == 0 {
		c.languages = []string{c.defaultLang}
	}

	return c, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.defaultLang = lang
		return nil
	}
}

// WithLanguages sets the supported languages for the Catalog.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(c *Catalog) error {
		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}
		if len(langSet) == 0 {
			return nil
		}

		delete(langSet, c.defaultLang)

		others := slices.Sorted(maps.Keys(langSet))
		c.languages = append(make([]string, 0, len(others)+1), c.defaultLang)
		c.languages = append(c.languages, others...)

		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// The translations map can be nested; it will be flattened internally for
// efficient lookups.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		c.addTranslations(lang, namespace, translations)
		return nil
	}
}

// WithPluralRule registers a custom plural rule for a language, overriding
// the rule inferred from the language code.
func WithPluralRule(lang string, rule plural.Rule) Option {
	return func(c *Catalog) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		c.pluralRules[lang] = rule
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a
// translation key is not found in any language (including the default
// fallback).
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = handler
		return nil
	}
}

// WithFormatter replaces the formatter used to render translations, e.g. to
// register custom type handlers or enable memoization.
func WithFormatter(f *msgfmt.Formatter) Option {
	return func(c *Catalog) error {
		if f == nil {
			return ErrNilFormatter
		}
		c.formatter = f
		return nil
	}
}

// T retrieves a translation for the given language, namespace, and key and
// renders its placeholder blocks with values from the provided maps.
// Falls back to the base language, then the default language, if the
// translation is not found. Returns the key itself if no translation exists.
func (c *Catalog) T(lang, namespace, key string, placeholders ...M) string {
	for _, candidate := range c.lookupChain(lang) {
		if translation, exists := c.translations[buildKey(candidate, namespace, key)]; exists {
			return c.render(translation, lang, placeholders...)
		}
	}

	if c.missingKeyHandler != nil {
		c.missingKeyHandler(lang, namespace, key)
	}

	return key
}

// Tn retrieves a pluralized translation for the given count. The plural
// category selected by the language's rule is appended to the key
// ("items.count.one", "items.count.other", ...), with CLDR fallback forms
// tried when the exact category is missing. The count is injected as the
// "count" placeholder.
func (c *Catalog) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	form := c.pluralRule(lang)(n)

	for _, candidate := range c.lookupChain(lang) {
		if translation, found := c.findPluralTranslation(candidate, namespace, key, form); found {
			merged := M{"count": n}
			for _, p := range placeholders {
				maps.Copy(merged, p)
			}
			return c.render(translation, lang, merged)
		}
	}

	if c.missingKeyHandler != nil {
		c.missingKeyHandler(lang, namespace, key)
	}

	return key
}

// Languages returns the list of available languages.
func (c *Catalog) Languages() []string {
	return c.languages
}

// DefaultLanguage returns the default/fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Formatter returns the formatter used to render translations.
func (c *Catalog) Formatter() *msgfmt.Formatter {
	return c.formatter
}

// render formats a translation through the msgfmt engine. A translation that
// fails to parse (unbalanced braces) degrades to its raw text rather than
// breaking the render path.
func (c *Catalog) render(translation, lang string, placeholders ...M) string {
	var values M
	switch len(placeholders) {
	case 0:
	case 1:
		values = placeholders[0]
	default:
		values = make(M)
		for _, p := range placeholders {
			maps.Copy(values, p)
		}
	}

	out, err := c.formatter.Format(translation, values, lang)
	if err != nil {
		return translation
	}
	return out
}

// lookupChain returns the languages to try, in order: exact tag, base
// language, default language.
func (c *Catalog) lookupChain(lang string) []string {
	chain := make([]string, 0, 3)
	chain = append(chain, lang)
	if base := baseLanguage(lang); base != lang {
		chain = append(chain, base)
	}
	if !slices.Contains(chain, c.defaultLang) {
		chain = append(chain, c.defaultLang)
	}
	return chain
}

func (c *Catalog) pluralRule(lang string) plural.Rule {
	if rule, ok := c.pluralRules[lang]; ok {
		return rule
	}
	if base := baseLanguage(lang); base != lang {
		if rule, ok := c.pluralRules[base]; ok {
			return rule
		}
	}
	if rule, ok := c.pluralRules[c.defaultLang]; ok {
		return rule
	}
	return plural.ForLanguage(lang)
}

// findPluralTranslation tries the exact plural form first, then the CLDR
// fallback forms.
func (c *Catalog) findPluralTranslation(lang, namespace, key, form string) (string, bool) {
	if trans, exists := c.translations[buildKey(lang, namespace, key+"."+form)]; exists {
		return trans, true
	}
	for _, fallback := range plural.FallbackForms(form) {
		if trans, exists := c.translations[buildKey(lang, namespace, key+"."+fallback)]; exists {
			return trans, true
		}
	}
	return "", false
}

func (c *Catalog) addTranslations(lang, namespace string, translations map[string]any) {
	for key, value := range flattenTranslations(translations, "") {
		c.translations[buildKey(lang, namespace, key)] = value
	}

	if _, exists := c.pluralRules[lang]; !exists {
		c.pluralRules[lang] = plural.ForLanguage(lang)
	}
}

func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// baseLanguage strips the region from a language tag (e.g., "en-US" → "en").
// Returns the input unchanged if there is no region.
func baseLanguage(lang string) string {
	if i := strings.IndexByte(lang, '-'); i > 0 {
		return lang[:i]
	}
	return lang
}
