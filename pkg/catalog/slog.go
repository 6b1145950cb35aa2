package catalog

import "log/slog"

// LogMissingKeys returns a missing-key handler that reports untranslated
// keys through the given logger:
//
//	c, err := catalog.New(
//		catalog.WithMissingKeyHandler(catalog.LogMissingKeys(slog.Default())),
//	)
func LogMissingKeys(log *slog.Logger) func(lang, namespace, key string) {
	return func(lang, namespace, key string) {
		log.Warn("missing translation",
			slog.String("lang", lang),
			slog.String("namespace", namespace),
			slog.String("key", key),
		)
	}
}
