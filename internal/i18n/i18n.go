// Package i18n holds the user-facing strings of the admin client. Messages
// live in embedded YAML catalogs, one file per namespace and locale, and are
// formatted through golang.org/x/text/message printers.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the source locale. Every other locale falls back to it key
// by key.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle contains the messages of every locale.
type Bundle struct {
	locales map[string]map[string]string

	builder *catalog.Builder
	tags    []language.Tag
	names   []string
	matcher language.Matcher
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = sync.OnceValue(func() *Bundle {
	b, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic("i18n: failed to load embedded catalogs: " + err.Error())
	}
	return b
})

// Default returns the bundle built from the embedded catalogs.
func Default() *Bundle {
	return defaultBundle()
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{locales: map[string]map[string]string{}}
	for _, path := range paths {
		data, err := fs.ReadFile(catalogFS, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}

		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		if err := b.addFile(path, file); err != nil {
			return nil, err
		}
	}

	if _, ok := b.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.build(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) addFile(path string, file catalogFile) error {
	localeFromPath := filepath.Base(filepath.Dir(path))
	namespaceFromPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", path, locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename namespace %q", path, file.Namespace, namespaceFromPath)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", path)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", path)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", path, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// build registers every locale in a private x/text catalog. Keys missing
// from a locale are registered with the base locale's text.
func (b *Bundle) build() error {
	b.builder = catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))

	// the base locale goes first so the matcher falls back to it
	b.names = append(b.names, BaseLocale)
	for _, locale := range b.Locales() {
		if locale != BaseLocale {
			b.names = append(b.names, locale)
		}
	}

	base := b.locales[BaseLocale]
	for _, locale := range b.names {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		b.tags = append(b.tags, tag)

		messages := b.locales[locale]
		for key, text := range base {
			if localized, ok := messages[key]; ok {
				text = localized
			}
			if err := b.builder.SetString(tag, key, text); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}

	b.matcher = language.NewMatcher(b.tags)
	return nil
}

// Locales returns the available locales, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasKey reports whether key exists in the base locale.
func (b *Bundle) HasKey(key string) bool {
	_, ok := b.locales[BaseLocale][key]
	return ok
}

// Missing lists the base keys locale does not translate.
func (b *Bundle) Missing(locale string) []string {
	messages := b.locales[locale]
	var out []string
	for key := range b.locales[BaseLocale] {
		if _, ok := messages[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// Translator formats messages for one locale.
type Translator struct {
	locale  string
	printer *message.Printer
}

// Translator returns a translator for the closest supported match of locale
// (for example "fr" or "fr-CA" map to fr-FR). Unknown or empty locales get
// the base locale.
func (b *Bundle) Translator(locale string) *Translator {
	idx := 0
	if tag, err := language.Parse(strings.TrimSpace(locale)); err == nil {
		_, i, confidence := b.matcher.Match(tag)
		if confidence != language.No {
			idx = i
		}
	}

	return &Translator{
		locale:  b.names[idx],
		printer: message.NewPrinter(b.tags[idx], message.Catalog(b.builder)),
	}
}

// Locale is the locale actually used.
func (t *Translator) Locale() string { return t.locale }

// T formats the message registered under key with args. Unknown keys are
// printed as is.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}
