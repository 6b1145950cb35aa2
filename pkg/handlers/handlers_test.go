package handlers_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/handlers"
	"github.com/dmitrymomot/msgfmt/pkg/msgfmt"
)

func newFormatter(t *testing.T) *msgfmt.Formatter {
	t.Helper()
	f, err := msgfmt.New(msgfmt.WithHandlers(handlers.Builtin()))
	require.NoError(t, err)
	return f
}

func TestPlural(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	message := "You have {count, plural, =0 {no items} one {# item} other {# items}}"

	tests := []struct {
		name     string
		count    any
		locale   string
		expected string
	}{
		{"exact zero branch", 0, "en", "You have no items"},
		{"one", 1, "en", "You have 1 item"},
		{"other", 5, "en", "You have 5 items"},
		{"large count is locale formatted", 1500, "en", "You have 1,500 items"},
		{"string count", "2", "en", "You have 2 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := f.Format(message, msgfmt.M{"count": tt.count}, tt.locale)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("category follows locale rule", func(t *testing.T) {
		t.Parallel()
		msg := "{n, plural, one {jeden} few {kilka} many {wiele} other {inne}}"
		out, err := f.Format(msg, msgfmt.M{"n": 3}, "pl")
		require.NoError(t, err)
		require.Equal(t, "kilka", out)

		out, err = f.Format(msg, msgfmt.M{"n": 15}, "pl")
		require.NoError(t, err)
		require.Equal(t, "wiele", out)
	})

	t.Run("missing category falls back to other", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format("{n, plural, other {fallback}}", msgfmt.M{"n": 1}, "en")
		require.NoError(t, err)
		require.Equal(t, "fallback", out)
	})

	t.Run("branch resolves nested placeholders", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format(
			"{count, plural, one {{name} has # message} other {{name} has # messages}}",
			msgfmt.M{"count": 2, "name": "Ada"}, "en",
		)
		require.NoError(t, err)
		require.Equal(t, "Ada has 2 messages", out)
	})

	t.Run("no applicable branch uses raw value", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format("{n, plural, one {single}}", msgfmt.M{"n": 9}, "en")
		require.NoError(t, err)
		require.Equal(t, "9", out)
	})

	t.Run("non-numeric value fails", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("{n, plural, other {x}}", msgfmt.M{"n": struct{}{}}, "en")
		require.ErrorIs(t, err, handlers.ErrNotANumber)
	})

	t.Run("malformed branches fail", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("{n, plural, one {x", msgfmt.M{"n": 1}, "en")
		require.Error(t, err)
	})
}

func TestSelectOrdinal(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	message := "{pos, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}"

	tests := []struct {
		pos      int
		expected string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{21, "21st"},
		{22, "22nd"},
	}

	for _, tt := range tests {
		out, err := f.Format(message, msgfmt.M{"pos": tt.pos}, "en")
		require.NoError(t, err)
		require.Equal(t, tt.expected, out, "pos=%d", tt.pos)
	}

	t.Run("non-english locale uses other", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format(message, msgfmt.M{"pos": 1}, "de")
		require.NoError(t, err)
		require.Equal(t, "1th", out)
	})
}

func TestSelect(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	message := "{gender, select, male {He} female {She} other {They}} replied"

	tests := []struct {
		name     string
		gender   any
		expected string
	}{
		{"matching branch", "female", "She replied"},
		{"other fallback", "nonbinary", "They replied"},
		{"non-string value is stringified", 1, "They replied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := f.Format(message, msgfmt.M{"gender": tt.gender}, "en")
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("branch resolves nested placeholders", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format(
			"{gender, select, female {She invited {guest}} other {They invited {guest}}}",
			msgfmt.M{"gender": "female", "guest": "Grace"}, "en",
		)
		require.NoError(t, err)
		require.Equal(t, "She invited Grace", out)
	})

	t.Run("no match and no other uses raw value", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format("{k, select, a {A}}", msgfmt.M{"k": "z"}, "en")
		require.NoError(t, err)
		require.Equal(t, "z", out)
	})
}

func TestNumber(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)

	tests := []struct {
		name     string
		message  string
		values   msgfmt.M
		locale   string
		expected string
	}{
		{"default style", "{n, number}", msgfmt.M{"n": 1234.5}, "en", "1,234.5"},
		{"german separators", "{n, number}", msgfmt.M{"n": 1234.5}, "de", "1.234,5"},
		{"integer style", "{n, number, integer}", msgfmt.M{"n": 1234567}, "en", "1,234,567"},
		{"percent style", "{n, number, percent}", msgfmt.M{"n": 0.5}, "en", "50%"},
		{"currency before", "{n, number, currency}", msgfmt.M{"n": 19.99}, "en", "$19.99"},
		{"currency after", "{n, number, currency}", msgfmt.M{"n": 19.99}, "de", "19,99 €"},
		{"negative currency", "{n, number, currency}", msgfmt.M{"n": -5.0}, "en", "-$5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := f.Format(tt.message, tt.values, tt.locale)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("unknown style fails", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("{n, number, scientific}", msgfmt.M{"n": 1}, "en")
		require.ErrorIs(t, err, handlers.ErrUnknownStyle)
	})

	t.Run("non-numeric value fails", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("{n, number}", msgfmt.M{"n": "abc"}, "en")
		require.ErrorIs(t, err, handlers.ErrNotANumber)
	})
}

func TestDate(t *testing.T) {
	t.Parallel()

	f := newFormatter(t)
	ts := time.Date(2026, time.February, 7, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		message  string
		locale   string
		expected string
	}{
		{"default style", "{ts, date}", "en", "02/07/2026"},
		{"british date", "{ts, date}", "en-GB", "07/02/2026"},
		{"german date", "{ts, date}", "de", "07.02.2026"},
		{"time style", "{ts, date, time}", "en", "3:30 PM"},
		{"datetime style", "{ts, date, datetime}", "de", "07.02.2026 15:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := f.Format(tt.message, msgfmt.M{"ts": ts}, tt.locale)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}

	t.Run("nil time pointer yields empty string", func(t *testing.T) {
		t.Parallel()
		out, err := f.Format("{ts, date}", msgfmt.M{"ts": (*time.Time)(nil)}, "en")
		require.NoError(t, err)
		require.Equal(t, "", out)
	})

	t.Run("non-time value fails", func(t *testing.T) {
		t.Parallel()
		_, err := f.Format("{ts, date}", msgfmt.M{"ts": "today"}, "en")
		require.ErrorIs(t, err, handlers.ErrNotATime)
	})
}
