// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     duration
// Description: Phrase bundles for human readable durations and offsets
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package duration

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/msto63/zonetime/foundation/core/i18n"
	mdwstringx "github.com/msto63/zonetime/foundation/utils/stringx"
)

//go:embed locales/*.toml locales/*.yaml
var bundles embed.FS

var (
	managerOnce sync.Once
	manager     *i18n.Manager
	managerErr  error
)

func loadManager() (*i18n.Manager, error) {
	managerOnce.Do(func() {
		sub, err := fs.Sub(bundles, "locales")
		if err != nil {
			managerErr = err
			return
		}
		manager, managerErr = i18n.New(i18n.Options{DefaultLocale: "en", FS: sub, Dir: "."})
	})
	return manager, managerErr
}

// Phrasebook renders duration words in one language. Unknown languages use
// English.
type Phrasebook struct {
	locale string
	m      *i18n.Manager
}

// NewPhrasebook returns the phrasebook for locale
func NewPhrasebook(locale string) *Phrasebook {
	m, err := loadManager()
	if err != nil {
		// bundles are embedded; a load failure is a build defect
		panic(err)
	}
	return &Phrasebook{locale: m.Match(locale), m: m}
}

// Locale is the matched bundle locale
func (p *Phrasebook) Locale() string {
	return p.locale
}

// Count renders "<n> <unit>" with the plural form for n; unit is one of
// years, months, days, hours, minutes, seconds, milliseconds.
func (p *Phrasebook) Count(unit string, n int) string {
	return p.m.PluralFor(p.locale, "duration."+unit, n, map[string]interface{}{"count": n})
}

// Join joins items as "a, b and c"
func (p *Phrasebook) Join(items []string) string {
	return mdwstringx.JoinHuman(items, ", ", " "+p.m.TFor(p.locale, "duration.and")+" ")
}

// Phrase returns a fixed phrase such as "duration.equal"
func (p *Phrasebook) Phrase(key string, data ...map[string]interface{}) string {
	return p.m.TFor(p.locale, key, data...)
}
