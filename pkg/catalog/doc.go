// Package catalog provides a translation catalog with language fallback,
// pluralization, and placeholder rendering through the msgfmt engine.
//
// Translations are stored flattened under "lang:namespace:key" composite
// keys for O(1) lookups. All configuration happens at construction time,
// making Catalog instances immutable and safe for concurrent use.
//
// # Basic Usage
//
//	c, err := catalog.New(
//		catalog.WithDefaultLanguage("en"),
//		catalog.WithTranslations("en", "app", map[string]any{
//			"welcome": "Welcome to our application",
//			"goodbye": "Goodbye, {name}!",
//		}),
//		catalog.WithTranslations("es", "app", map[string]any{
//			"welcome": "Bienvenido a nuestra aplicación",
//			"goodbye": "¡Adiós, {name}!",
//		}),
//	)
//
//	msg := c.T("es", "app", "welcome")
//	// Output: "Bienvenido a nuestra aplicación"
//
//	farewell := c.T("es", "app", "goodbye", catalog.M{"name": "Juan"})
//	// Output: "¡Adiós, Juan!"
//
// Translations use the msgfmt block syntax, so typed placeholders work too:
//
//	"inbox": "You have {count, plural, =0 {no mail} one {# message} other {# messages}}"
//
// # File-Based Translations
//
// Load translations from JSON or YAML files using fs.FS:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	c, err := catalog.New(
//		catalog.WithDefaultLanguage("en"),
//		catalog.WithJSONDir(subFS),
//		catalog.WithYAMLDir(subFS),
//	)
//
// File convention: {lang}/{namespace}.json (or .yaml/.yml)
//
// # Pluralization
//
// Tn selects a plural-form key suffix using CLDR rules and injects the count
// as the "count" placeholder:
//
//	c, _ := catalog.New(
//		catalog.WithTranslations("en", "items", map[string]any{
//			"count": map[string]string{
//				"zero":  "No items",
//				"one":   "1 item",
//				"other": "{count} items",
//			},
//		}),
//	)
//
//	c.Tn("en", "items", "count", 0)  // "No items"
//	c.Tn("en", "items", "count", 5)  // "5 items"
//
// # Language Fallback
//
// Lookups try the exact language tag, then its base language ("en" for
// "en-US"), then the default language, and finally return the key itself.
// An optional missing-key handler observes untranslated keys;
// LogMissingKeys adapts it to slog.
//
// # Language Negotiation
//
// MatchLanguage picks the best available language for an HTTP
// Accept-Language header:
//
//	lang := catalog.MatchLanguage(r.Header.Get("Accept-Language"), c.Languages())
//
// # Translator
//
// The Translator type fixes the language, namespace, and locale format:
//
//	tr := catalog.NewTranslator(c, "de", "ui", nil)
//	title := tr.T("page.title")
//	price := tr.FormatCurrency(19.99) // "19,99 €"
package catalog
