// Package error provides the structured error type used across zonetime.
//
// Package: error
// Title: zonetime Error Handling
// Description: Coded errors with severity, details and the failing operation.
//              Locale/zone fallbacks, duration input problems and calendar range
//              checks all report through this type so callers can branch on
//              Code instead of matching message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Date/time domain codes, dropped stack capture
//
// Usage:
//
//	import mdwerror "github.com/msto63/zonetime/foundation/core/error"
//
//	err := mdwerror.New("month 13 not between 1 and 12").
//		WithCode(mdwerror.CodeMonthOutOfRange).
//		WithOperation("zonetime.DaysInMonth").
//		WithDetail("monthNr", 13)
//
//	if mdwerror.HasCode(err, mdwerror.CodeMonthOutOfRange) {
//		// ...
//	}
package error
