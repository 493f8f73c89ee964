// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     intl
// Description: Locale and time zone resolution, CLDR translator lookup
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package intl

import (
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_CA"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/hu"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/zh"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/foundation/utils/timex"
	"github.com/msto63/zonetime/pkg/core/cache"
)

// resolvedLocales holds successful ResolveLocale results by input
var resolvedLocales = cache.New[string](cache.DefaultConfig())

var (
	tableOnce   sync.Once
	translators []locales.Translator
	supported   []language.Tag
	matcher     language.Matcher
)

// loadTable builds the translator table. The first entry is the matcher default.
func loadTable() {
	tableOnce.Do(func() {
		translators = []locales.Translator{
			en_US.New(), en.New(), en_GB.New(), en_CA.New(),
			nl.New(), de.New(), fr.New(), es.New(), it.New(), pt.New(),
			ru.New(), hu.New(), zh.New(), ja.New(), ar.New(),
		}
		supported = make([]language.Tag, len(translators))
		for i, tr := range translators {
			supported[i] = language.MustParse(strings.ReplaceAll(tr.Locale(), "_", "-"))
		}
		matcher = language.NewMatcher(supported)
	})
}

// ResolveLocale canonicalizes a BCP-47 tag. Malformed tags and tags with no
// match in the CLDR table are rejected.
func ResolveLocale(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "", mdwerror.New("empty locale").
			WithCode(mdwerror.CodeInvalidLocale).
			WithOperation("intl.ResolveLocale")
	}
	if resolved, ok := resolvedLocales.Get(locale); ok {
		return resolved, nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", mdwerror.Wrap(err, "invalid locale").
			WithCode(mdwerror.CodeInvalidLocale).
			WithDetail("locale", locale).
			WithOperation("intl.ResolveLocale")
	}

	loadTable()
	if _, _, confidence := matcher.Match(tag); confidence == language.No {
		return "", mdwerror.Newf("unsupported locale %q", locale).
			WithCode(mdwerror.CodeInvalidLocale).
			WithDetail("locale", locale).
			WithOperation("intl.ResolveLocale")
	}

	resolvedLocales.Set(locale, tag.String())
	return tag.String(), nil
}

// ResolveTimeZone loads an IANA zone through the shared location cache and
// returns it with its canonical name.
func ResolveTimeZone(timeZone string) (*time.Location, string, error) {
	timeZone = strings.TrimSpace(timeZone)
	if timeZone == "" || strings.EqualFold(timeZone, "Local") {
		return nil, "", mdwerror.Newf("invalid time zone %q", timeZone).
			WithCode(mdwerror.CodeInvalidTimeZone).
			WithOperation("intl.ResolveTimeZone")
	}

	loc, err := timex.LoadLocation(timeZone)
	if err != nil {
		return nil, "", mdwerror.Wrap(err, "invalid time zone").
			WithCode(mdwerror.CodeInvalidTimeZone).
			WithDetail("time_zone", timeZone).
			WithOperation("intl.ResolveTimeZone")
	}
	return loc, loc.String(), nil
}

// Translator returns the closest CLDR translator for locale, en-US when
// nothing matches.
func Translator(locale string) locales.Translator {
	loadTable()
	tag, err := language.Parse(locale)
	if err != nil {
		return translators[0]
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return translators[0]
	}
	return translators[index]
}

func parseTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

var referenceTime = time.Date(2033, time.November, 22, 13, 5, 0, 0, time.UTC)

// DefaultHourCycle is "h12" for locales whose short time pattern carries a
// day period, "h23" otherwise.
func DefaultHourCycle(locale string) string {
	if strings.Contains(Translator(locale).FmtTimeShort(referenceTime), "13") {
		return "h23"
	}
	return "h12"
}

// DayPeriods returns the locale's am and pm markers
func DayPeriods(locale string) (string, string) {
	tr := Translator(locale)
	am := stripClock(tr.FmtTimeShort(referenceTime.Add(-12 * time.Hour)))
	pm := stripClock(tr.FmtTimeShort(referenceTime))
	if am == "" || pm == "" || am == pm {
		return "AM", "PM"
	}
	if upperDayPeriods(locale) {
		am, pm = strings.ToUpper(am), strings.ToUpper(pm)
	}
	return am, pm
}

// usEnglishRegions share the uppercase AM/PM of en; other English regions
// inherit the lowercase markers of en-001.
var usEnglishRegions = map[string]bool{
	"US": true, "AS": true, "GU": true, "MP": true, "PR": true, "UM": true, "VI": true,
}

func upperDayPeriods(locale string) bool {
	tag := parseTag(locale)
	if base, _ := tag.Base(); base.String() != "en" {
		return false
	}
	region, _ := tag.Region()
	return usEnglishRegions[region.String()]
}

func stripClock(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == ':' {
			return -1
		}
		return r
	}, s))
}

// dateOrder returns the positions of year, month and day in the locale's
// short date pattern together with the separator between the first two.
func dateOrder(locale string) ([]byte, string) {
	short := Translator(locale).FmtDateShort(referenceTime)
	positions := map[byte]int{
		'y': strings.Index(short, "33"),
		'm': strings.Index(short, "11"),
		'd': strings.Index(short, "22"),
	}
	for _, p := range positions {
		if p < 0 {
			return []byte{'y', 'm', 'd'}, "-"
		}
	}

	order := []byte{'y', 'm', 'd'}
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if positions[order[j]] < positions[order[i]] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	// every sample is two digits wide; "33" is the tail of a four digit year
	sep := short[positions[order[0]]+2 : positions[order[1]]]
	if sep == "" {
		sep = "-"
	}
	return order, sep
}

// ShapeNumber renders n with at least minDigits digits in the locale's
// numbering system.
func ShapeNumber(locale string, n, minDigits int) string {
	p := message.NewPrinter(numberingTag(locale))
	return p.Sprint(number.Decimal(n, number.NoSeparator(), number.MinIntegerDigits(minDigits)))
}

// numberingTag reduces a tag to its base language, which carries the
// default numbering system; regional tags such as ar-EG otherwise resolve
// to Latin digits. An explicit -u-nu- keyword is kept.
func numberingTag(locale string) language.Tag {
	tag := parseTag(locale)
	if tag.TypeForKey("nu") != "" {
		return tag
	}
	base, _ := tag.Base()
	return language.Make(base.String())
}

var digitZeros = []rune{'0', '٠', '۰', '०', '০', '๐', '၀', '０'}

// WesternDigits maps decimal digits of the supported numbering systems to ASCII
func WesternDigits(s string) string {
	return strings.Map(func(r rune) rune {
		for _, zero := range digitZeros {
			if r >= zero && r <= zero+9 {
				return '0' + (r - zero)
			}
		}
		return r
	}, s)
}
