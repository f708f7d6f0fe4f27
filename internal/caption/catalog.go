package caption

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLocale is used whenever a requested locale has no catalog or lacks a key.
const BaseLocale = "en"

//go:embed locales/*.yaml
var embeddedFS embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Caption  string            `yaml:"caption"`
	Messages map[string]string `yaml:"messages"`
}

type localeCatalog struct {
	locale   string
	caption  *template.Template
	messages map[string]*template.Template
}

// Catalog holds the caption template and operator messages of every locale.
type Catalog struct {
	locales map[string]*localeCatalog
	tags    []language.Tag
	names   []string
	matcher language.Matcher
}

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	c := &Catalog{locales: make(map[string]*localeCatalog)}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		if err := c.add(p, data); err != nil {
			return nil, err
		}
	}

	base, ok := c.locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if base.caption == nil {
		return nil, fmt.Errorf("base locale %s has no caption template", BaseLocale)
	}

	// the base locale goes first so the matcher falls back to it
	sort.SliceStable(c.names, func(i, j int) bool { return c.names[i] == BaseLocale && c.names[j] != BaseLocale })
	for _, name := range c.names {
		c.tags = append(c.tags, language.Make(name))
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(p string, data []byte) error {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse catalog %s: %w", p, err)
	}

	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != fromPath {
		return fmt.Errorf("catalog %s: locale %q must match file name %q", p, locale, fromPath)
	}
	if _, err := language.Parse(locale); err != nil {
		return fmt.Errorf("catalog %s: parse locale tag %q: %w", p, locale, err)
	}

	lc := &localeCatalog{locale: locale, messages: make(map[string]*template.Template, len(file.Messages))}
	if strings.TrimSpace(file.Caption) != "" {
		tmpl, err := newTemplate(locale + ".caption").Parse(file.Caption)
		if err != nil {
			return fmt.Errorf("catalog %s: parse caption: %w", p, err)
		}
		lc.caption = tmpl
	}
	for key, body := range file.Messages {
		tmpl, err := newTemplate(locale + "." + key).Parse(body)
		if err != nil {
			return fmt.Errorf("catalog %s: parse message %q: %w", p, key, err)
		}
		lc.messages[key] = tmpl
	}

	c.locales[locale] = lc
	c.names = append(c.names, locale)
	return nil
}

func newTemplate(name string) *template.Template {
	return template.New(name).Option("missingkey=zero").Funcs(template.FuncMap{
		"link":   hideLink,
		"escape": escapeMarkdown,
	})
}

// Locales returns the available locales, base locale first.
func (c *Catalog) Locales() []string {
	return append([]string(nil), c.names...)
}

// Resolve maps a requested locale (e.g. "IT", "es-MX") onto the closest
// available catalog, falling back to BaseLocale.
func (c *Catalog) Resolve(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if _, ok := c.locales[trimmed]; ok {
		return trimmed
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return BaseLocale
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return BaseLocale
	}
	return c.names[index]
}

// Message renders one operator message, falling back to the base locale. A
// missing key renders as the key itself.
func (c *Catalog) Message(locale, key string, data any) string {
	tmpl := c.lookup(locale, key)
	if tmpl == nil {
		return key
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return key
	}
	return out.String()
}

func (c *Catalog) lookup(locale, key string) *template.Template {
	if lc, ok := c.locales[c.Resolve(locale)]; ok {
		if tmpl, ok := lc.messages[key]; ok {
			return tmpl
		}
	}
	return c.locales[BaseLocale].messages[key]
}

func (c *Catalog) captionTemplate(locale string) *template.Template {
	if lc, ok := c.locales[c.Resolve(locale)]; ok && lc.caption != nil {
		return lc.caption
	}
	return c.locales[BaseLocale].caption
}

// hideLink renders url behind text as a Markdown hyperlink.
func hideLink(url, text string) string {
	url = strings.ReplaceAll(url, ")", "%29")
	return "[" + text + "](" + url + ")"
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
