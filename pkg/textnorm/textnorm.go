// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalises free-text user input before it is stored or
// matched.
//
// Korean input in particular arrives in both composed (NFC) and decomposed
// (NFD, common from macOS clients) Hangul. Without normalisation a search for
// "카페" would miss a title typed on a different keyboard.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean trims surrounding whitespace, converts to NFC and collapses internal
// runs of whitespace to a single space.
func Clean(s string) string {
	return strings.Join(strings.FieldsFunc(norm.NFC.String(s), unicode.IsSpace), " ")
}

// Trim converts to NFC and trims surrounding whitespace, preserving line breaks
// inside multi-line fields.
func Trim(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// likeEscaper escapes the LIKE metacharacters using backslash, the default
// escape character in PostgreSQL.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern turns a user search term into a substring pattern for
// ILIKE. Wildcards typed by the user match literally.
func LikePattern(term string) string {
	return "%" + likeEscaper.Replace(Clean(term)) + "%"
}
