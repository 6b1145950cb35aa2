package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
)

// Date returns the "date" type handler for time.Time values. The format
// argument selects the style:
//
//	{ts, date}            locale date layout
//	{ts, date, time}      locale time layout
//	{ts, date, datetime}  locale datetime layout
//
// Date produces a scalar and never recurses.
func Date() msgfmt.Handler {
	return func(value any, format string, _ msgfmt.M, locale string, _ msgfmt.Recurse) (any, error) {
		var t time.Time
		switch v := value.(type) {
		case time.Time:
			t = v
		case *time.Time:
			if v == nil {
				return "", nil
			}
			t = *v
		default:
			return nil, fmt.Errorf("%w: %v (%T)", ErrNotATime, value, value)
		}

		lf := FormatFor(locale)
		switch strings.TrimSpace(format) {
		case "", "date":
			return lf.FormatDate(t), nil
		case "time":
			return lf.FormatTime(t), nil
		case "datetime":
			return lf.FormatDateTime(t), nil
		default:
			return nil, fmt.Errorf("%w: date style %q", ErrUnknownStyle, format)
		}
	}
}
