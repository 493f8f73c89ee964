package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
)

// execute runs the root command with a fixed user environment
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zonetime.toml")
	content := "[general]\nlog_level = \"error\"\n\n[defaults]\ntemplate = \"yyyy-mm-dd hh:mmi\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	formatZone, formatOptions = "", nil
	diffFromZone, diffToZone, diffDays = "", "", false
	addDate, addZone, addTemplate = "", "", ""
	offsetAt, calendarLocale, namesShort = "", "", false
	showZone, showLocale = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path, "--locale", "en-US", "--tz", "UTC", "-o", "text"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "zone",
			args: []string{"zoneformat", "dd.mm.yyyy hh:mmi", "2000-01-01T00:00:00Z", "--zone", "Europe/Berlin"},
			want: "01.01.2000 01:00\n",
		},
		{
			name: "user zone",
			args: []string{"format", "yyyy/mm/dd", "2000-01-01T00:00:00Z", "--zone", "Asia/Tokyo"},
			want: "2000/01/01\n",
		},
		{
			name: "locale option",
			args: []string{"format", "d MM yyyy", "2000-01-01T00:00:00Z", "--option", "l:nl-NL"},
			want: "1 januari 2000\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAcrossCommand(t *testing.T) {
	out, err := execute(t, "across", "2025/01/15 15:00", "--from", "America/Vancouver", "--to", "Europe/Amsterdam", "-o", "json")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	var result struct {
		TimeDifference string            `json:"timeDifference"`
		Result         map[string]string `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got := result.Result["Europe_Amsterdam"]; got != "2025/01/16 00:00:00" {
		t.Errorf("Amsterdam = %q", got)
	}
	if !strings.HasPrefix(result.TimeDifference, "Time offset +09:00") {
		t.Errorf("TimeDifference = %q", result.TimeDifference)
	}
}

func TestCalendarCommand(t *testing.T) {
	out, err := execute(t, "calendar", "2000", "2", "-o", "yaml")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	var cal calendarYear
	if err := yaml.Unmarshal([]byte(out), &cal); err != nil {
		t.Fatalf("invalid YAML %q: %v", out, err)
	}
	if len(cal.Months) != 1 || cal.Months[0].Name != "February" || len(cal.Months[0].Days) != 29 {
		t.Fatalf("unexpected calendar %+v", cal)
	}
	if cal.Months[0].Days[28] != "2000-02-29" {
		t.Errorf("last day = %q", cal.Months[0].Days[28])
	}

	text, err := execute(t, "calendar", "2000", "2")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(text, "February 2000") || !strings.Contains(text, "29") {
		t.Errorf("text calendar = %q", text)
	}

	if _, err := execute(t, "calendar", "2000", "13"); !mdwerror.HasCode(err, mdwerror.CodeMonthOutOfRange) {
		t.Errorf("month 13 error = %v", err)
	}
}

func TestNamesCommand(t *testing.T) {
	out, err := execute(t, "names", "nl-NL")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"januari", "zondag"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q is missing %q", out, want)
		}
	}
}

func TestDiffAndOffsetCommands(t *testing.T) {
	out, err := execute(t, "diff", "2025-01-01", "2025-01-16", "--days")
	if err != nil || out != "15\n" {
		t.Errorf("diff --days = %q, %v", out, err)
	}

	out, err = execute(t, "offset", "Europe/Paris", "Pacific/Auckland", "--at", "2025-01-01")
	if err != nil || !strings.Contains(out, "+12:00") {
		t.Errorf("offset = %q, %v", out, err)
	}

	out, err = execute(t, "add", "1 month", "--date", "2000-01-31T12:00:00Z")
	if err != nil || out != "2000-03-02 12:00\n" {
		t.Errorf("add = %q, %v", out, err)
	}
}

func TestCommandErrors(t *testing.T) {
	if _, err := execute(t, "dst", "Mars/Olympus"); !mdwerror.HasCode(err, mdwerror.CodeInvalidTimeZone) {
		t.Errorf("dst error = %v", err)
	}
	if _, err := execute(t, "names", "-o", "xml"); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("unknown output error = %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "cli 1.0.0") {
		t.Errorf("version output = %q", out)
	}
}
