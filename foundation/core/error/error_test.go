// File: error_test.go
// Title: Unit Tests for Core Error Implementation
// Description: Tests construction, wrapping, code lookup and JSON output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Tests for domain codes and chain lookup

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("test error")

	if err.Error() != "test error" {
		t.Errorf("Expected message 'test error', got '%s'", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Expected code %s, got %s", CodeUnknown, err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Expected severity %s, got %s", SeverityMedium, err.Severity())
	}
	if err.Timestamp().IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code     Code
		severity Severity
	}{
		{CodeMonthOutOfRange, SeverityLow},
		{CodeInvalidLocaleOrZone, SeverityLow},
		{CodeInvalidExtension, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{Code("SOMETHING_ELSE"), SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.severity {
				t.Errorf("Expected severity %s, got %s", tt.severity, err.Severity())
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeMonthOutOfRange)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %s", explicit.Severity())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := New("month 13 not between 1 and 12").
		WithCode(CodeMonthOutOfRange).
		WithDetail("monthNr", 13)
	wrapped := Wrap(base, "days in month")

	if wrapped.Code() != CodeMonthOutOfRange {
		t.Errorf("Expected code to be carried over, got %s", wrapped.Code())
	}
	if wrapped.Details()["monthNr"] != 13 {
		t.Errorf("Expected detail to be carried over, got %v", wrapped.Details())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the wrapped error")
	}
	if want := "days in month: month 13 not between 1 and 12"; wrapped.Error() != want {
		t.Errorf("Expected %q, got %q", want, wrapped.Error())
	}

	std := Wrap(fmt.Errorf("io"), "loading")
	if std.Code() != CodeUnknown {
		t.Errorf("Expected CodeUnknown for std error, got %s", std.Code())
	}
}

func TestHasCodeFollowsChain(t *testing.T) {
	base := New("bad").WithCode(CodeInvalidDurationInput)
	outer := fmt.Errorf("parse: %w", base)

	if !HasCode(outer, CodeInvalidDurationInput) {
		t.Error("HasCode should look through fmt wrapping")
	}
	if HasCode(outer, CodeUnknownMember) {
		t.Error("HasCode matched the wrong code")
	}
	if GetCode(outer) != CodeInvalidDurationInput {
		t.Errorf("GetCode = %s", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode of plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity of plain error should be SeverityMedium")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := map[Code]string{
		CodeInvalidTimeZone: "locale",
		CodeMonthOutOfRange: "value",
		CodeUnknownMember:   "dispatch",
		CodeInvalidConfig:   "configuration",
		CodeInternal:        "generic",
	}
	for code, want := range tests {
		if got := code.Category(); got != want {
			t.Errorf("%s.Category() = %s, want %s", code, got, want)
		}
		if !code.IsValid() {
			t.Errorf("%s should be valid", code)
		}
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("bad member").
		WithCode(CodeUnknownMember).
		WithOperation("zonetime.Get").
		WithDetails(map[string]interface{}{"name": "fooBar", "b": 1})

	s := err.String()
	for _, want := range []string{"Error: bad member", "Code: UNKNOWN_MEMBER", "Operation: zonetime.Get", "Details: {b=1, name=fooBar}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON failed: %v", jerr)
	}
	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatalf("Unmarshal failed: %v", jerr)
	}
	if decoded["code"] != "UNKNOWN_MEMBER" || decoded["operation"] != "zonetime.Get" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}
