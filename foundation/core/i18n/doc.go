// File: doc.go
// Title: Internationalization Package Documentation
// Description: Package i18n provides phrase bundles loaded from TOML or YAML
//              files with template interpolation and plural forms.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Bundles read from fs.FS, per-call locale selection

/*
Package i18n provides phrase bundles for zonetime's human-readable output.

Bundles are loaded from any fs.FS, typically an embed.FS, one file per
locale named after the locale ("en.toml", "de.yaml"). Plural entries are
arrays: the first element is the singular, the second the plural form.

	manager, err := i18n.New(i18n.Options{
		DefaultLocale: "en",
		FS:            phrases,
		Dir:           "phrases",
	})

	manager.PluralFor("de-DE", "duration.hour", 3, map[string]interface{}{"Count": 3})
	// "3 Stunden"

Lookups for a regional tag fall back to its base language and then to the
default locale.
*/
package i18n
