// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zonetime
// Description: Factory and static surface for zone aware values
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zonetime

import (
	"strings"
	"sync"
	"time"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/foundation/core/log"
	"github.com/msto63/zonetime/foundation/utils/timex"
	"github.com/msto63/zonetime/pkg/core/dtformat"
	"github.com/msto63/zonetime/pkg/core/duration"
	"github.com/msto63/zonetime/pkg/core/intl"
	"github.com/msto63/zonetime/pkg/core/localezone"
	"github.com/msto63/zonetime/pkg/core/offset"
)

// Descriptor is the loose locale and zone input; see localezone.Descriptor
type Descriptor = localezone.Descriptor

// Factory creates values that share one environment, extension registry
// and logger.
type Factory struct {
	env      intl.Environment
	envLoc   *time.Location
	resolver *localezone.Resolver
	renderer dtformat.Renderer
	calc     *duration.Calculator
	offsets  *offset.Engine
	registry *Registry
	logger   *log.Logger
	now      func() time.Time
}

// Option configures a Factory
type Option func(*Factory)

// WithEnvironment sets the user environment. Defaults to the detected one.
func WithEnvironment(env intl.Environment) Option {
	return func(f *Factory) { f.env = env }
}

// WithRegistry sets the custom extension registry. Defaults to
// DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(f *Factory) { f.registry = r }
}

// WithLogger sets the diagnostic logger
func WithLogger(l *log.Logger) Option {
	return func(f *Factory) { f.logger = l }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(f *Factory) { f.now = now }
}

// New creates a factory
func New(opts ...Option) *Factory {
	f := &Factory{
		env:      intl.DefaultEnvironment(),
		registry: DefaultRegistry,
		logger:   log.GetDefault(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.logger = f.logger.WithName("zonetime")
	f.envLoc = f.env.Location()
	f.resolver = localezone.NewResolver(f.env, f.logger)
	f.renderer = dtformat.NewRenderer(f.env)
	f.calc = duration.NewCalculator(f.env)
	f.offsets = offset.NewEngine(f.calc)
	return f
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// Default returns the factory for the detected environment
func Default() *Factory {
	defaultFactoryOnce.Do(func() {
		defaultFactory = New()
	})
	return defaultFactory
}

// Environment returns the user environment
func (f *Factory) Environment() intl.Environment {
	return f.env
}

// Registry returns the custom extension registry
func (f *Factory) Registry() *Registry {
	return f.registry
}

func (f *Factory) info(d []Descriptor) localezone.Info {
	if len(d) == 0 {
		return f.resolver.Resolve("", "")
	}
	return f.resolver.ResolveDescriptor(d[0])
}

func (f *Factory) value(t time.Time, info localezone.Info) *Value {
	return &Value{t: timex.TruncateMilli(t), info: info, f: f}
}

// Now returns the current instant
func (f *Factory) Now(d ...Descriptor) *Value {
	return f.value(f.now(), f.info(d))
}

// NowIn returns the current instant in the locale and zone of d
func (f *Factory) NowIn(d Descriptor) *Value {
	return f.Now(d)
}

// FromTime wraps t
func (f *Factory) FromTime(t time.Time, d ...Descriptor) *Value {
	if t.IsZero() {
		return f.Now(d...)
	}
	return f.value(t, f.info(d))
}

// FromValue clones other into this factory. A nil value means now.
func (f *Factory) FromValue(other *Value) *Value {
	if other == nil {
		return f.Now()
	}
	return f.value(other.t, other.info)
}

// From builds a value from wall clock fields in the user zone. The month
// is zero based (0 = January); missing fields are 0, day defaults to 1.
// Without fields the current instant is returned.
func (f *Factory) From(fields ...int) *Value {
	if len(fields) == 0 {
		return f.Now()
	}
	return f.value(fieldsFromArray(fields).In(f.envLoc), f.info(nil))
}

// FromFields is From with a descriptor
func (f *Factory) FromFields(fields []int, d ...Descriptor) *Value {
	if len(fields) == 0 {
		return f.Now(d...)
	}
	return f.value(fieldsFromArray(fields).In(f.envLoc), f.info(d))
}

func fieldsFromArray(fields []int) timex.Fields {
	get := func(i, def int) int {
		if i < len(fields) {
			return fields[i]
		}
		return def
	}
	return timex.Fields{
		Year: get(0, 1970), Month: get(1, 0) + 1, Day: get(2, 1),
		Hour: get(3, 0), Minute: get(4, 0), Second: get(5, 0), Millisecond: get(6, 0),
	}
}

// FromEpochSeconds wraps a Unix timestamp
func (f *Factory) FromEpochSeconds(ts int64, d ...Descriptor) *Value {
	return f.value(time.Unix(ts, 0), f.info(d))
}

// Parse reads a loosely formatted date string whose first three parts are
// year, month and day in ymdOrder. The wall clock is read in the user
// zone. Unparseable input yields the current instant and a warning.
func (f *Factory) Parse(s, ymdOrder string, d ...Descriptor) *Value {
	fields, err := timex.ParseFields(s, ymdOrder)
	if err != nil {
		f.logger.WarnWithErr("can't convert date string, using current date", err, log.Fields{
			"input": s, "order": ymdOrder,
		})
		return f.Now(d...)
	}
	return f.value(fields.In(f.envLoc), f.info(d))
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02T15:04:05",
}

// FromString accepts RFC 3339 and RFC 1123 timestamps, falling back to
// Parse in year, month, day order.
func (f *Factory) FromString(s string, d ...Descriptor) *Value {
	s = strings.TrimSpace(s)
	for _, layout := range stringLayouts {
		if t, err := time.ParseInLocation(layout, s, f.envLoc); err == nil {
			return f.value(t, f.info(d))
		}
	}
	return f.Parse(s, "ymd", d...)
}

// DaysInMonth returns the length of month monthNr (1-12), in a leap year
// when leap is set.
func (f *Factory) DaysInMonth(monthNr int, leap ...bool) (int, error) {
	return timex.DaysInMonthNr(monthNr, len(leap) > 0 && leap[0])
}

// WeeksInYear returns the number of ISO-8601 weeks of year
func (f *Factory) WeeksInYear(year int) int {
	return timex.WeeksInYear(year)
}

// NameList holds long and short names
type NameList struct {
	Long  []string `json:"long" yaml:"long"`
	Short []string `json:"short" yaml:"short"`
}

// LocalMonthNames lists month names for locale, January first. An
// invalid locale uses the user locale.
func (f *Factory) LocalMonthNames(locale string) NameList {
	locale = f.resolver.Resolve(locale, "").Locale
	return NameList{Long: intl.MonthNames(locale, intl.Long), Short: intl.MonthNames(locale, intl.Short)}
}

// LocalWeekdayNames lists weekday names for locale, Sunday first
func (f *Factory) LocalWeekdayNames(locale string) NameList {
	locale = f.resolver.Resolve(locale, "").Locale
	return NameList{Long: intl.WeekdayNames(locale, intl.Long), Short: intl.WeekdayNames(locale, intl.Short)}
}

// ValidateLocaleZoneInfo resolves d, substituting environment values for
// invalid or missing parts.
func (f *Factory) ValidateLocaleZoneInfo(d Descriptor) localezone.Info {
	return f.resolver.ResolveDescriptor(d)
}

// AddCustomExtension registers ext with the factory's registry
func (f *Factory) AddCustomExtension(ext Extension) error {
	return f.registry.Add(ext)
}

// Keys lists the enumerable member names of values from this factory
func (f *Factory) Keys() []string {
	return keys(f.registry)
}

func invalidMonth(monthNr int, operation string) error {
	return mdwerror.Newf("%d not between 1 and 12", monthNr).
		WithCode(mdwerror.CodeMonthOutOfRange).
		WithOperation(operation).
		WithDetail("monthNr", monthNr)
}
