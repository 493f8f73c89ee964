// Package log provides structured logging for zonetime.
//
// Package: log
// Title: zonetime Structured Logging
// Description: Leveled logger with immutable With* derivation, JSON, text and
//              logfmt output, and severity-aware reporting of coded errors.
//              Locale fallbacks and extension registration are reported here.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Dropped async buffering, timers and request context
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Name: "localezone", Format: log.FormatText})
//	logger.Warn("falling back to environment locale", log.Fields{
//		"requested": "xx-YY",
//		"fallback":  "en-US",
//	})
package log
