package handlers

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// LocaleFormat contains locale-specific formatting rules for numbers,
// currency, percentages, and dates. It is immutable after creation and safe
// for concurrent use.
type LocaleFormat struct {
	decimalSep     string
	thousandSep    string
	currency       string
	currencyPos    string // "before" or "after"
	percentSym     string
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to US English formatting.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSep:     ".",
		thousandSep:    ",",
		currency:       "$",
		currencyPos:    "before",
		percentSym:     "%",
		dateLayout:     "01/02/2006",
		timeLayout:     "3:04 PM",
		dateTimeLayout: "01/02/2006 3:04 PM",
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSep = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSep = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currency = symbol
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after").
func WithCurrencyPosition(pos string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == "before" || pos == "after" {
			lf.currencyPos = pos
		}
	}
}

// WithPercentSymbol sets the percent symbol.
func WithPercentSymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.percentSym = symbol
	}
}

// WithDateLayout sets the date layout (Go time layout).
func WithDateLayout(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateLayout = layout
	}
}

// WithTimeLayout sets the time layout (Go time layout).
func WithTimeLayout(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeLayout = layout
	}
}

// WithDateTimeLayout sets the datetime layout (Go time layout).
func WithDateTimeLayout(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeLayout = layout
	}
}

// FormatNumber formats a number with the locale's separators, keeping up to
// two decimal places.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	cents := int64(math.Round(n * 100))
	out := lf.groupDigits(cents / 100)
	if frac := cents % 100; frac > 0 {
		dec := strings.TrimRight(pad2(frac), "0")
		out += lf.decimalSep + dec
	}

	if neg {
		out = "-" + out
	}
	return out
}

// FormatInteger formats a whole number with the locale's thousand separator.
func (lf *LocaleFormat) FormatInteger(n int64) string {
	if n < 0 {
		return "-" + lf.groupDigits(-n)
	}
	return lf.groupDigits(n)
}

// FormatCurrency formats a currency amount with the locale's symbol,
// position, and separators, always keeping two decimal places.
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	num := lf.groupDigits(cents/100) + lf.decimalSep + pad2(cents%100)

	var out string
	if lf.currencyPos == "before" {
		out = lf.currency + num
	} else {
		out = num + " " + lf.currency
	}

	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercent formats a percentage with the locale's formatting, keeping
// one decimal place. The input is a decimal (0.5 for 50%).
func (lf *LocaleFormat) FormatPercent(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}

	tenths := int64(math.Round(n * 1000))
	out := strconv.FormatInt(tenths/10, 10)
	if frac := tenths % 10; frac > 0 {
		out += lf.decimalSep + strconv.FormatInt(frac, 10)
	}

	if neg {
		out = "-" + out
	}
	return out + lf.percentSym
}

// FormatDate formats a date with the locale's date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateLayout)
}

// FormatTime formats a time with the locale's time layout.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(lf.timeLayout)
}

// FormatDateTime formats a datetime with the locale's datetime layout.
func (lf *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(lf.dateTimeLayout)
}

func (lf *LocaleFormat) groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 || lf.thousandSep == "" {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(lf.thousandSep)
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
