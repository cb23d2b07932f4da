package i18n

import (
	"errors"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestBundle(t *testing.T) *Bundle {
	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{
		"test":       "test value",
		"help.usage": "Usage: %s",
	}))
	return b
}

func TestDefaultBundle(t *testing.T) {
	b := Default()

	t.Run("embedded languages", func(t *testing.T) {
		assert.Equal(t, []language.Tag{language.German, language.English, language.French}, b.Languages())
	})

	t.Run("english headings", func(t *testing.T) {
		assert.Equal(t, "SUMMARY", b.TL(language.English, "cmdhelp.help.summary"))
		assert.Equal(t, "No help available.", b.GetMessage("cmdhelp.msg.no_help"))
	})

	t.Run("translated headings", func(t *testing.T) {
		assert.Equal(t, "OPTIONEN", b.TL(language.German, "cmdhelp.help.options"))
		assert.Equal(t, "Aucune description.", b.Message(language.French, "cmdhelp.msg.no_description"))
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		assert.Equal(t, "USAGE", b.TL(language.Japanese, "cmdhelp.help.usage"))
		assert.Equal(t, "USAGE", b.Message(language.Japanese, "cmdhelp.help.usage"))
	})

	t.Run("unknown key is returned verbatim", func(t *testing.T) {
		assert.Equal(t, "no.such.key", b.TL(language.English, "no.such.key"))
		assert.Equal(t, "no.such.key", b.GetMessage("no.such.key"))
	})
}

func TestBundle_AddLanguage(t *testing.T) {
	t.Run("formats arguments", func(t *testing.T) {
		b := newTestBundle(t)
		assert.Equal(t, "Usage: foo", b.TL(language.English, "help.usage", "foo"))
	})

	t.Run("missing keys are rejected", func(t *testing.T) {
		b := newTestBundle(t)
		err := b.AddLanguage(language.Spanish, map[string]string{"test": "valor de prueba"})
		assert.True(t, errors.Is(err, ErrIncompleteTranslation))
		assert.ErrorContains(t, err, "missing [help.usage]")
		assert.False(t, b.HasLanguage(language.Spanish))
	})

	t.Run("extra keys are rejected", func(t *testing.T) {
		b := newTestBundle(t)
		err := b.AddLanguage(language.Spanish, map[string]string{
			"test":       "valor de prueba",
			"help.usage": "Uso: %s",
			"extra":      "extra",
		})
		assert.True(t, errors.Is(err, ErrIncompleteTranslation))
		assert.ErrorContains(t, err, "extra [extra]")
	})

	t.Run("complete language is accepted", func(t *testing.T) {
		b := newTestBundle(t)
		require.NoError(t, b.AddLanguage(language.Spanish, map[string]string{
			"test":       "valor de prueba",
			"help.usage": "Uso: %s",
		}))
		assert.True(t, b.HasKey(language.Spanish, "test"))
		assert.False(t, b.HasKey(language.Spanish, "other"))
		assert.Equal(t, "Uso: bar", b.TL(language.Spanish, "help.usage", "bar"))
	})

	t.Run("known languages are merged", func(t *testing.T) {
		b := newTestBundle(t)
		require.NoError(t, b.AddLanguage(language.English, map[string]string{"new": "new value"}))
		assert.Equal(t, "new value", b.GetMessage("new"))
		assert.Equal(t, "test value", b.GetMessage("test"))
	})
}

func TestNewBundleWithFS(t *testing.T) {
	t.Run("loads every locale", func(t *testing.T) {
		b, err := NewBundleWithFS(fstest.MapFS{
			"l/en.json":  {Data: []byte(`{"k": "english"}`)},
			"l/de.json":  {Data: []byte(`{"k": "deutsch"}`)},
			"l/notes.md": {Data: []byte(`ignored`)},
		}, "l")
		require.NoError(t, err)
		assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())
		assert.Equal(t, "deutsch", b.TL(language.German, "k"))
	})

	t.Run("default language is required", func(t *testing.T) {
		_, err := NewBundleWithFS(fstest.MapFS{"l/de.json": {Data: []byte(`{}`)}}, "l")
		assert.True(t, errors.Is(err, ErrMissingDefaultLocale))
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := NewBundleWithFS(fstest.MapFS{"l/en.json": {Data: []byte(`{not json`)}}, "l")
		assert.True(t, errors.Is(err, ErrInvalidLocaleFile))
	})

	t.Run("bad file name", func(t *testing.T) {
		_, err := NewBundleWithFS(fstest.MapFS{"l/not a tag.json": {Data: []byte(`{}`)}}, "l")
		assert.True(t, errors.Is(err, ErrInvalidLocaleFile))
	})

	t.Run("incomplete translation", func(t *testing.T) {
		_, err := NewBundleWithFS(fstest.MapFS{
			"l/en.json": {Data: []byte(`{"a": "a", "b": "b"}`)},
			"l/fr.json": {Data: []byte(`{"a": "a"}`)},
		}, "l")
		assert.True(t, errors.Is(err, ErrIncompleteTranslation))
	})
}

func TestBundle_DefaultLanguage(t *testing.T) {
	b, err := NewBundle()
	require.NoError(t, err)

	b.SetDefaultLanguage(language.German)
	assert.Equal(t, language.German, b.GetDefaultLanguage())
	assert.Equal(t, "BESCHREIBUNG", b.GetMessage("cmdhelp.help.description"))
	assert.Equal(t, "BESCHREIBUNG", b.TL(language.Japanese, "cmdhelp.help.description"))
	assert.Equal(t, "DESCRIPTION", Default().GetMessage("cmdhelp.help.description"))
}

func TestBundle_ConcurrentReads(t *testing.T) {
	b := Default()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "OPTIONS", b.TL(language.English, "cmdhelp.help.options"))
		}()
	}
	wg.Wait()
}
