// File: doc.go
// Title: Time Utilities Package Documentation
// Description: Package timex provides proleptic Gregorian calendar
//              primitives and a cached time zone loader.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Calendar primitives, field parsing with ymd order

/*
Package timex provides calendar primitives that do not depend on a locale:
leap years, month lengths, ISO weeks, quarters, day boundaries and the
parsing of loosely formatted date strings into fields.

Date strings are split on any of "T :-/.," and the first three parts are
read in the given year/month/day order:

	fields, err := timex.ParseFields("23/01/2025 22:00", "dmy")
	// fields == Fields{Year: 2025, Month: 1, Day: 23, Hour: 22}

Locations are loaded once and cached:

	loc, err := timex.LoadLocation("Europe/Amsterdam")
*/
package timex
