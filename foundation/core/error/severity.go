// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level an error is
//              reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for date/time codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers recoverable input problems (bad locale, bad duration input)
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific mapping
	SeverityMedium

	// SeverityHigh covers programmer errors such as invalid extensions
	SeverityHigh

	// SeverityCritical is reserved for internal failures
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeInvalidExtension, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidLocale, CodeInvalidTimeZone, CodeInvalidLocaleOrZone,
		CodeInvalidDurationInput, CodeInvalidNumericInput, CodeMonthOutOfRange,
		CodeInvalidDateString, CodeInvalidInput, CodeNotFound, CodeInvalidFormat,
		CodeUnknownMember, CodeReadOnlyMember:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
