// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package stringx provides small Unicode-aware string helpers
//              used for blank checks and human-readable joins.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Added JoinHuman; removed padding, case and random helpers

// Package stringx provides Unicode-aware string helpers.
//
//	stringx.JoinHuman([]string{"1 year", "2 days", "3 hours"}, ", ", " and ")
//	// "1 year, 2 days and 3 hours"
package stringx
