// Copyright (c) 2026 Library of Ui. All rights reserved.
// Author: dev@libraryofui.app

// Package textnorm normalizes user-supplied text for search comparisons.
//
// # Usage
//
// Novel titles and search keywords arrive in mixed Unicode forms (full-width
// digits, compatibility jamo, decomposed Hangul). Normalizing both sides to
// NFKC keeps ILIKE matching predictable regardless of the reader's input method.
package textnorm

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Keyword prepares a raw search keyword for matching.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (composes Hangul, folds compatibility forms).
// 2. Collapses interior whitespace runs to a single space.
// 3. Trims surrounding whitespace.
func Keyword(s string) string {
	normalized := norm.NFKC.String(s)
	fields := strings.Fields(normalized)
	return strings.Join(fields, " ")
}
