package localezone

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
	"github.com/msto63/zonetime/foundation/core/log"
	"github.com/msto63/zonetime/pkg/core/intl"
)

var testEnv = intl.Environment{Locale: "nl-NL", TimeZone: "Europe/Amsterdam"}

func newTestResolver() (*Resolver, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatText, Output: &buf})
	return NewResolver(testEnv, logger), &buf
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		timeZone string
		want     Info
		wantLog  bool
	}{
		{
			name:   "valid pair",
			locale: "de-DE", timeZone: "America/Los_Angeles",
			want: Info{"de-DE", "America/Los_Angeles", "l:de-DE,tz:America/Los_Angeles"},
		},
		{
			name: "empty means environment",
			want: Info{"nl-NL", "Europe/Amsterdam", "l:nl-NL,tz:Europe/Amsterdam"},
		},
		{
			name:   "invalid zone keeps locale",
			locale: "fr", timeZone: "Atlantis/Capital",
			want:    Info{"fr", "Europe/Amsterdam", "l:fr,tz:Europe/Amsterdam"},
			wantLog: true,
		},
		{
			name:   "invalid locale keeps zone",
			locale: "!!", timeZone: "Asia/Tokyo",
			want:    Info{"nl-NL", "Asia/Tokyo", "l:nl-NL,tz:Asia/Tokyo"},
			wantLog: true,
		},
		{
			name:   "both invalid",
			locale: "??", timeZone: "Nowhere",
			want:    Info{"nl-NL", "Europe/Amsterdam", "l:nl-NL,tz:Europe/Amsterdam"},
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, buf := newTestResolver()
			got := r.Resolve(tt.locale, tt.timeZone)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve mismatch (-want +got):\n%s", diff)
			}
			if logged := buf.Len() > 0; logged != tt.wantLog {
				t.Errorf("logged = %v, want %v (%s)", logged, tt.wantLog, buf.String())
			}
			if tt.wantLog && !strings.Contains(buf.String(), string(mdwerror.CodeInvalidLocaleOrZone)) {
				t.Errorf("log line lacks error code: %s", buf.String())
			}
		})
	}
}

func TestValidateReturnsCodedError(t *testing.T) {
	r, _ := newTestResolver()

	info, err := r.Validate("en-GB", "Moon/Base")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidLocaleOrZone) {
		t.Fatalf("expected CodeInvalidLocaleOrZone, got %v", err)
	}
	if info.TimeZone != "Europe/Amsterdam" || info.Locale != "en-GB" {
		t.Errorf("fallback info = %+v", info)
	}

	if !r.IsValid("ja", "Asia/Tokyo") {
		t.Error("ja/Asia/Tokyo should be valid")
	}
}

func TestDescriptorShorthand(t *testing.T) {
	r, _ := newTestResolver()
	got := r.ResolveDescriptor(Descriptor{L: "zh", TZ: "Asia/Shanghai"})
	if got.Locale != "zh" || got.TimeZone != "Asia/Shanghai" {
		t.Errorf("ResolveDescriptor = %+v", got)
	}

	d := Descriptor{Locale: "de", L: "fr"}
	if locale, _ := d.Values(); locale != "de" {
		t.Errorf("Locale should win over L, got %q", locale)
	}
	if !(Descriptor{}).IsZero() {
		t.Error("empty descriptor should be zero")
	}
}

func TestFormatOptions(t *testing.T) {
	if got := FormatOptions("en-US", ""); got != "l:en-US" {
		t.Errorf("FormatOptions = %q", got)
	}
	if got := FormatOptions("", ""); got != "" {
		t.Errorf("FormatOptions = %q", got)
	}
}
