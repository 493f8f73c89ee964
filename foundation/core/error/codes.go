// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the date/time core, the
//              configuration layer and the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with date/time domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Locale and time zone
	CodeInvalidLocale       Code = "INVALID_LOCALE"
	CodeInvalidTimeZone     Code = "INVALID_TIME_ZONE"
	CodeInvalidLocaleOrZone Code = "INVALID_LOCALE_OR_ZONE"

	// Date values and arithmetic
	CodeInvalidDurationInput Code = "INVALID_DURATION_INPUT"
	CodeInvalidNumericInput  Code = "INVALID_NUMERIC_INPUT"
	CodeMonthOutOfRange      Code = "MONTH_OUT_OF_RANGE"
	CodeInvalidDateString    Code = "INVALID_DATE_STRING"

	// Dispatch and extensions
	CodeInvalidExtension Code = "INVALID_EXTENSION"
	CodeUnknownMember    Code = "UNKNOWN_MEMBER"
	CodeReadOnlyMember   Code = "READ_ONLY_MEMBER"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeInvalidFormat Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidLocale, CodeInvalidTimeZone, CodeInvalidLocaleOrZone,
		CodeInvalidDurationInput, CodeInvalidNumericInput, CodeMonthOutOfRange, CodeInvalidDateString,
		CodeInvalidExtension, CodeUnknownMember, CodeReadOnlyMember,
		CodeConfigError, CodeInvalidConfig, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidLocale, CodeInvalidTimeZone, CodeInvalidLocaleOrZone:
		return "locale"
	case CodeInvalidDurationInput, CodeInvalidNumericInput, CodeMonthOutOfRange, CodeInvalidDateString:
		return "value"
	case CodeInvalidExtension, CodeUnknownMember, CodeReadOnlyMember:
		return "dispatch"
	case CodeConfigError, CodeInvalidConfig, CodeInvalidFormat:
		return "configuration"
	default:
		return "generic"
	}
}
