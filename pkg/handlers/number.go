package handlers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
)

// Number returns the "number" type handler. The format argument selects the
// style:
//
//	{n, number}            locale separators, up to two decimals
//	{n, number, integer}   whole number with thousand separators
//	{n, number, percent}   0.5 -> "50%"
//	{n, number, currency}  locale currency symbol and placement
//
// Number produces a scalar and never recurses.
func Number() msgfmt.Handler {
	return func(value any, format string, _ msgfmt.M, locale string, _ msgfmt.Recurse) (any, error) {
		n, ok := toFloat(value)
		if !ok {
			return nil, fmt.Errorf("%w: %v (%T)", ErrNotANumber, value, value)
		}

		lf := FormatFor(locale)
		switch strings.TrimSpace(format) {
		case "", "decimal":
			return lf.FormatNumber(n), nil
		case "integer":
			return lf.FormatInteger(int64(math.Round(n))), nil
		case "percent":
			return lf.FormatPercent(n), nil
		case "currency":
			return lf.FormatCurrency(n), nil
		default:
			return nil, fmt.Errorf("%w: number style %q", ErrUnknownStyle, format)
		}
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
