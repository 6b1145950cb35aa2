package plural

import "strings"

// Rule determines which plural category to use for a given count.
// It follows Unicode CLDR (Common Locale Data Repository) guidelines.
type Rule func(n int) string

// Plural category constants as defined by Unicode CLDR.
// Not all languages use all categories.
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

// Default provides a generic rule that works reasonably well for languages
// without specific rules. It distinguishes between zero, one, few, many,
// and other.
var Default Rule = func(n int) string {
	if n == 0 {
		return Zero
	}

	absN := abs(n)
	if absN == 1 {
		return One
	}
	if absN >= 2 && absN <= 4 {
		return Few
	}
	if absN > 4 && absN < 20 {
		return Many
	}
	return Other
}

// English implements plural rules for English and similar languages.
// Categories: zero (0), one (1), other (everything else)
var English Rule = func(n int) string {
	if n == 0 {
		return Zero
	}
	if n == 1 || n == -1 {
		return One
	}
	return Other
}

// Slavic implements plural rules for Slavic languages
// (Polish, Czech, Ukrainian, Croatian, Serbian, etc.)
// Categories: zero, one, few, many
var Slavic Rule = func(n int) string {
	if n == 0 {
		return Zero
	}
	if n == 1 || n == -1 {
		return One
	}

	absN := abs(n)
	mod10 := absN % 10
	mod100 := absN % 100

	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return Few
	}

	return Many
}

// Romance implements plural rules for Romance languages
// (French, Italian, Portuguese, but NOT Spanish which is simpler)
// Categories: one (0, 1), many (1,000,000+), other
var Romance Rule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return One
	}
	if abs(n) >= 1000000 {
		return Many
	}
	return Other
}

// Spanish implements plural rules for Spanish.
// Simpler than other Romance languages.
// Categories: one (1), many (1,000,000+), other
var Spanish Rule = func(n int) string {
	if n == 1 || n == -1 {
		return One
	}
	if abs(n) >= 1000000 {
		return Many
	}
	return Other
}

// Germanic implements plural rules for Germanic languages
// (German, Dutch, Swedish, Norwegian, Danish)
// Categories: one (1), other (everything else including 0)
var Germanic Rule = func(n int) string {
	if n == 1 || n == -1 {
		return One
	}
	return Other
}

// Asian implements plural rules for Asian languages that don't distinguish
// plural forms (Japanese, Chinese, Korean, Thai, Vietnamese)
// Categories: other (all numbers)
var Asian Rule = func(_ int) string {
	return Other
}

// Arabic implements complex plural rules for Arabic.
// Categories: zero, one, two, few, many, other
var Arabic Rule = func(n int) string {
	if n == 0 {
		return Zero
	}
	if n == 1 || n == -1 {
		return One
	}
	if n == 2 || n == -2 {
		return Two
	}

	mod100 := abs(n) % 100

	if mod100 >= 3 && mod100 <= 10 {
		return Few
	}
	if mod100 >= 11 && mod100 <= 99 {
		return Many
	}

	return Other
}

// ForLanguage returns the appropriate cardinal rule for a given language
// code. It uses the two-letter ISO 639-1 language code (e.g., "en", "fr",
// "pl"); region subtags are ignored. Falls back to Default for unknown
// languages.
func ForLanguage(lang string) Rule {
	switch baseLang(lang) {
	case "en":
		return English
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return Slavic
	case "fr", "it", "pt":
		return Romance
	case "es":
		return Spanish
	case "de", "nl", "sv", "no", "da", "is":
		return Germanic
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return Asian
	case "ar":
		return Arabic
	default:
		return Default
	}
}

// OrdinalEnglish implements English ordinal categories:
// one (1st, 21st, ...), two (2nd, 22nd, ...), few (3rd, 23rd, ...),
// other (4th, 11th, 12th, 13th, ...).
var OrdinalEnglish Rule = func(n int) string {
	absN := abs(n)
	mod10 := absN % 10
	mod100 := absN % 100

	if mod10 == 1 && mod100 != 11 {
		return One
	}
	if mod10 == 2 && mod100 != 12 {
		return Two
	}
	if mod10 == 3 && mod100 != 13 {
		return Few
	}
	return Other
}

// OrdinalDefault maps every count to other, which is correct for most
// languages that do not inflect ordinals.
var OrdinalDefault Rule = func(_ int) string {
	return Other
}

// OrdinalForLanguage returns the ordinal rule for a given language code.
func OrdinalForLanguage(lang string) Rule {
	if baseLang(lang) == "en" {
		return OrdinalEnglish
	}
	return OrdinalDefault
}

// FallbackForms returns the categories to try, in order, when a message has
// no branch for the selected category. Every chain ends at Other.
func FallbackForms(form string) []string {
	switch form {
	case Zero, One, Many:
		return []string{Other}
	case Two:
		return []string{Few, Many, Other}
	case Few:
		return []string{Many, Other}
	case Other:
		return nil
	default:
		return []string{Other}
	}
}

// SupportedForms returns which plural categories a rule actually uses.
// This is useful for validation when loading translations.
func SupportedForms(rule Rule) []string {
	forms := make(map[string]bool)

	testNumbers := []int{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 100, 1000, 1000000}
	for _, n := range testNumbers {
		forms[rule(n)] = true
	}

	order := []string{Zero, One, Two, Few, Many, Other}
	var result []string
	for _, form := range order {
		if forms[form] {
			result = append(result, form)
		}
	}

	return result
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func baseLang(lang string) string {
	if len(lang) >= 2 {
		return strings.ToLower(lang[:2])
	}
	return lang
}
