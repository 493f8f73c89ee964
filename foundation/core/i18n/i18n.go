// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager: loading phrase bundles from an
//              fs.FS, template interpolation and plural form selection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2026-10-19 v0.2.0: fs.FS sources, TFor/PluralFor with locale matching,
//                       template cache behind its own lock

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	mdwstringx "github.com/msto63/zonetime/foundation/utils/stringx"
)

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")
	FS            fs.FS  // Source of bundle files; os.DirFS(Dir) when nil
	Dir           string // Directory inside FS containing bundle files
}

// Manager manages phrase bundles for several locales
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	translations  map[string]map[string]interface{} // locale -> translations

	tmplMu    sync.Mutex
	templates map[string]*template.Template // locale/key -> compiled template
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// New creates a new i18n manager and loads every bundle in the directory
func New(options Options) (*Manager, error) {
	if mdwstringx.IsBlank(options.DefaultLocale) {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("i18n.New")
	}

	fsys := options.FS
	dir := options.Dir
	if fsys == nil {
		if mdwstringx.IsBlank(dir) {
			dir = "./locales"
		}
		fsys = os.DirFS(dir)
		dir = "."
	}
	if dir == "" {
		dir = "."
	}

	manager := &Manager{
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}

	if err := manager.loadAll(fsys, dir); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.New").
			WithDetail("directory", dir)
	}

	return manager, nil
}

func (m *Manager) loadAll(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		locale := strings.TrimSuffix(name, path.Ext(name))
		if mdwstringx.IsBlank(locale) {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", name, err)
		}

		data := make(TranslationData)
		if ext == ".toml" {
			if err := toml.Unmarshal(content, &data); err != nil {
				return fmt.Errorf("failed to parse TOML file %s: %w", name, err)
			}
		} else {
			if err := yaml.Unmarshal(content, &data); err != nil {
				return fmt.Errorf("failed to parse YAML file %s: %w", name, err)
			}
		}

		m.translations[locale] = data
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return fmt.Errorf("default locale '%s' not found", m.defaultLocale)
	}

	return nil
}

// Match returns the best loaded bundle for a BCP-47 or POSIX style tag:
// exact match, then the base language, then the default locale.
func (m *Manager) Match(locale string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.match(locale)
}

func (m *Manager) match(locale string) string {
	if _, ok := m.translations[locale]; ok {
		return locale
	}
	normalized := strings.ReplaceAll(locale, "_", "-")
	if _, ok := m.translations[normalized]; ok {
		return normalized
	}
	base := strings.ToLower(strings.SplitN(normalized, "-", 2)[0])
	if _, ok := m.translations[base]; ok {
		return base
	}
	return m.defaultLocale
}

// T translates a key in the current locale with optional template data
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	return m.TFor(m.GetCurrentLocale(), key, data...)
}

// TFor translates a key in the given locale. Missing keys render as [key].
func (m *Manager) TFor(locale, key string, data ...map[string]interface{}) string {
	translation, err := m.TryTFor(locale, key, data...)
	if err != nil && translation == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return translation
}

// TryTFor translates a key and returns an error if translation fails
func (m *Manager) TryTFor(locale, key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	matched := m.match(locale)
	raw := m.lookup(matched, key)
	m.mu.RUnlock()

	if raw == nil {
		return "", mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryTFor").
			WithDetail("key", key).
			WithDetail("locale", locale)
	}

	forms := parsePluralForms(raw)
	translation := forms[0]

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.renderTemplate(matched+"/"+key, translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.renderTemplate")
		}
		return rendered, nil
	}

	return translation, nil
}

// Plural returns the plural form for count in the current locale
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	return m.PluralFor(m.GetCurrentLocale(), key, count, data)
}

// PluralFor returns the appropriate plural form for count in the given locale
func (m *Manager) PluralFor(locale, key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	matched := m.match(locale)
	raw := m.lookup(matched, key)
	m.mu.RUnlock()

	if raw == nil {
		return fmt.Sprintf("[%s]", key)
	}

	forms := parsePluralForms(raw)
	formIndex := pluralFormIndex(count, matched)
	if formIndex >= len(forms) {
		formIndex = len(forms) - 1
	}

	selected := forms[formIndex]
	if data != nil {
		cacheKey := fmt.Sprintf("%s/%s_plural_%d", matched, key, formIndex)
		if rendered, err := m.renderTemplate(cacheKey, selected, data); err == nil {
			return rendered
		}
	}

	return selected
}

// lookup walks the dotted key in locale, falling back to the default locale
func (m *Manager) lookup(locale, key string) interface{} {
	if value := getNestedRawValue(m.translations[locale], key); value != nil {
		return value
	}
	if locale != m.defaultLocale {
		return getNestedRawValue(m.translations[m.defaultLocale], key)
	}
	return nil
}

func getNestedRawValue(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}

	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		switch next := current[k].(type) {
		case map[string]interface{}:
			current = next
		case TranslationData:
			current = next
		default:
			return nil
		}
	}

	return nil
}

func (m *Manager) renderTemplate(key, text string, data map[string]interface{}) (string, error) {
	m.tmplMu.Lock()
	tmpl, exists := m.templates[key]
	if !exists {
		var err error
		tmpl, err = template.New(key).Parse(text)
		if err != nil {
			m.tmplMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		m.templates[key] = tmpl
	}
	m.tmplMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

func parsePluralForms(value interface{}) []string {
	switch v := value.(type) {
	case []interface{}:
		if len(v) == 0 {
			return []string{""}
		}
		forms := make([]string, len(v))
		for i, item := range v {
			forms[i] = fmt.Sprintf("%v", item)
		}
		return forms
	case string:
		return []string{v}
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

// pluralFormIndex returns the plural form index for a count and locale
func pluralFormIndex(count int, locale string) int {
	switch {
	case strings.HasPrefix(locale, "fr"):
		if count <= 1 && count >= -1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.translations[locale]; !exists {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}

	m.currentLocale = locale
	return nil
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetAvailableLocales returns a sorted list of all loaded locales
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s, locales: %d}",
		m.defaultLocale, m.currentLocale, len(m.translations))
}
