package handlers

import "strings"

// EnUS returns a LocaleFormat configured for US English (en-US).
func EnUS() *LocaleFormat {
	return NewLocaleFormat()
}

// EnGB returns a LocaleFormat configured for British English (en-GB).
func EnGB() *LocaleFormat {
	return NewLocaleFormat(
		WithCurrencySymbol("£"),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// DeDE returns a LocaleFormat configured for German (de-DE).
func DeDE() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		WithDateLayout("02.01.2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02.01.2006 15:04"),
	)
}

// FrFR returns a LocaleFormat configured for French (fr-FR).
func FrFR() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencySymbol("€"),
		WithCurrencyPosition("after"),
		WithDateLayout("02/01/2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// PlPL returns a LocaleFormat configured for Polish (pl-PL).
func PlPL() *LocaleFormat {
	return NewLocaleFormat(
		WithDecimalSeparator(","),
		WithThousandSeparator(" "),
		WithCurrencySymbol("zł"),
		WithCurrencyPosition("after"),
		WithDateLayout("02.01.2006"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("02.01.2006 15:04"),
	)
}

// JaJP returns a LocaleFormat configured for Japanese (ja-JP).
func JaJP() *LocaleFormat {
	return NewLocaleFormat(
		WithCurrencySymbol("¥"),
		WithDateLayout("2006/01/02"),
		WithTimeLayout("15:04"),
		WithDateTimeLayout("2006/01/02 15:04"),
	)
}

// FormatFor returns the LocaleFormat for a locale tag, falling back to EnUS
// for unknown locales. Region subtags are honored where a regional format
// exists (en-GB), otherwise the base language decides.
func FormatFor(locale string) *LocaleFormat {
	tag := strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if tag == "en-gb" {
		return EnGB()
	}

	base := tag
	if i := strings.IndexByte(tag, '-'); i > 0 {
		base = tag[:i]
	}

	switch base {
	case "de":
		return DeDE()
	case "fr":
		return FrFR()
	case "pl":
		return PlPL()
	case "ja":
		return JaJP()
	default:
		return EnUS()
	}
}
