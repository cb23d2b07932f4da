// Package i18n holds the messages used for section headings, fallback texts and error
// messages, one message table per language.
//
// Every language except the default one must define exactly the keys of the default
// language. Messages are printf-style format strings rendered through x/text printers.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var locales embed.FS

const (
	localeDir = "locales"
	localeExt = ".json"
)

var (
	ErrInvalidLocaleFile     = errors.New("invalid locale file")
	ErrMissingDefaultLocale  = errors.New("default language has no locale file")
	ErrIncompleteTranslation = errors.New("translation does not match the default language")
)

// Bundle maps languages to message tables
type Bundle struct {
	mu       sync.RWMutex
	fallback language.Tag
	tables   map[language.Tag]map[string]string
	catalog  *catalog.Builder
	printers map[language.Tag]*message.Printer
}

var embedded = mustLoad(locales, localeDir)

func mustLoad(fsys fs.FS, dir string) *Bundle {
	b, err := NewBundleWithFS(fsys, dir)
	if err != nil {
		panic("i18n: " + err.Error())
	}

	return b
}

// Default returns the shared bundle built from the embedded locales (en, de, fr)
func Default() *Bundle {
	return embedded
}

// NewBundle returns a private copy of the embedded locales which may be extended without
// affecting Default()
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(locales, localeDir)
}

// NewEmptyBundle returns a bundle without messages whose default language is English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		fallback: language.English,
		tables:   make(map[language.Tag]map[string]string),
		catalog:  catalog.NewBuilder(),
		printers: make(map[language.Tag]*message.Printer),
	}
}

// NewBundleWithFS loads every <lang>.json file of dir. The file of the default language
// (English) is required.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	files, err := readLocales(fsys, dir)
	if err != nil {
		return nil, err
	}

	b := NewEmptyBundle()
	def, ok := files[b.fallback]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefaultLocale, b.fallback)
	}
	if err = b.AddLanguage(b.fallback, def); err != nil {
		return nil, err
	}
	delete(files, b.fallback)

	for _, lang := range sortedTags(files) {
		if err = b.AddLanguage(lang, files[lang]); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func readLocales(fsys fs.FS, dir string) (map[language.Tag]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	files := make(map[language.Tag]map[string]string, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != localeExt {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(name, localeExt))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLocaleFile, name, err)
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}

		var table map[string]string
		if err = json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLocaleFile, name, err)
		}
		files[lang] = table
	}

	return files, nil
}

// AddLanguage registers messages for lang. Messages of a language already present are
// merged into its table. A new language other than the default one must define exactly the
// keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, messages map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	table, known := b.tables[lang]
	if !known && lang != b.fallback {
		if err := b.compareKeys(lang, messages); err != nil {
			return err
		}
	}

	if table == nil {
		table = make(map[string]string, len(messages))
	}
	for key, msg := range messages {
		if err := b.catalog.SetString(lang, key, msg); err != nil {
			return fmt.Errorf("%s: %q: %w", lang, key, err)
		}
		table[key] = msg
	}

	b.tables[lang] = table
	if _, ok := b.printers[lang]; !ok {
		b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	}

	return nil
}

func (b *Bundle) compareKeys(lang language.Tag, messages map[string]string) error {
	reference := b.tables[b.fallback]

	var missing, extra []string
	for key := range reference {
		if _, ok := messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	for key := range messages {
		if _, ok := reference[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}

	sort.Strings(missing)
	sort.Strings(extra)

	return fmt.Errorf("%w: %s: missing %v, extra %v", ErrIncompleteTranslation, lang, missing, extra)
}

// TL formats the message key in lang. Unknown languages use the default language and
// unknown keys are returned unchanged.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	p, ok := b.printers[lang]
	if !ok {
		p = b.printers[b.fallback]
	}
	b.mu.RUnlock()

	if p == nil {
		return key
	}

	return p.Sprintf(key, args...)
}

// Message returns the unformatted message key in lang, falling back to the default
// language and then to the key itself
func (b *Bundle) Message(lang language.Tag, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.tables[lang][key]; ok {
		return msg
	}
	if msg, ok := b.tables[b.fallback][key]; ok {
		return msg
	}

	return key
}

// GetMessage returns the unformatted message key in the default language
func (b *Bundle) GetMessage(key string) string {
	return b.Message(b.GetDefaultLanguage(), key)
}

// HasLanguage reports whether lang has a message table
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.tables[lang]
	return ok
}

// HasKey reports whether the message table of lang defines key
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.tables[lang][key]
	return ok
}

// Languages returns the languages with a message table, sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return sortedTags(b.tables)
}

// SetDefaultLanguage changes the language used by GetMessage and for unknown languages
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fallback = lang
}

// GetDefaultLanguage returns the default language
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fallback
}

func sortedTags[V any](m map[language.Tag]V) []language.Tag {
	tags := make([]language.Tag, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})

	return tags
}
