package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgfmt/pkg/catalog"
)

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads language directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{
				Data: []byte(`{"hello": "Hello, {name}!", "nested": {"deep": "Deep"}}`),
			},
			"de/common.json": &fstest.MapFile{
				Data: []byte(`{"hello": "Hallo, {name}!"}`),
			},
			"en/errors.json": &fstest.MapFile{
				Data: []byte(`{"not_found": "Not found"}`),
			},
		}

		c, err := catalog.New(catalog.WithJSONDir(fsys))
		require.NoError(t, err)

		require.Equal(t, "Hello, Ada!", c.T("en", "common", "hello", catalog.M{"name": "Ada"}))
		require.Equal(t, "Hallo, Ada!", c.T("de", "common", "hello", catalog.M{"name": "Ada"}))
		require.Equal(t, "Deep", c.T("en", "common", "nested.deep"))
		require.Equal(t, "Not found", c.T("en", "errors", "not_found"))
	})

	t.Run("rejects files outside language directories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"stray.json": &fstest.MapFile{Data: []byte(`{}`)},
		}

		_, err := catalog.New(catalog.WithJSONDir(fsys))
		require.ErrorIs(t, err, catalog.ErrInvalidFile)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`not json`)},
		}

		_, err := catalog.New(catalog.WithJSONDir(fsys))
		require.ErrorIs(t, err, catalog.ErrInvalidFile)
	})

	t.Run("ignores other extensions", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.json": &fstest.MapFile{Data: []byte(`{"a": "A"}`)},
			"en/readme.txt":  &fstest.MapFile{Data: []byte(`ignore me`)},
		}

		c, err := catalog.New(catalog.WithJSONDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "A", c.T("en", "common", "a"))
	})
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	t.Run("loads yaml and yml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.yaml": &fstest.MapFile{
				Data: []byte("hello: Hello, {name}!\nitems:\n  count:\n    one: 1 item\n    other: '{count} items'\n"),
			},
			"fr/common.yml": &fstest.MapFile{
				Data: []byte("hello: Bonjour, {name}!\n"),
			},
		}

		c, err := catalog.New(catalog.WithYAMLDir(fsys))
		require.NoError(t, err)

		require.Equal(t, "Hello, Ada!", c.T("en", "common", "hello", catalog.M{"name": "Ada"}))
		require.Equal(t, "Bonjour, Ada!", c.T("fr", "common", "hello", catalog.M{"name": "Ada"}))
		require.Equal(t, "3 items", c.Tn("en", "common", "items.count", 3))
	})

	t.Run("rejects invalid YAML", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/common.yaml": &fstest.MapFile{Data: []byte("\t: broken")},
		}

		_, err := catalog.New(catalog.WithYAMLDir(fsys))
		require.ErrorIs(t, err, catalog.ErrInvalidFile)
	})
}
