// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package token defines moji symbol types and emoji operator constants.
package token

// Symbol represents a moji operator symbol.
type Symbol int

const (
	NONE Symbol = iota

	// Operators (emoji grapheme clusters)
	ASSIGN   // 👉 - Bind name to value
	PRINT    // 🗣️ - Print resolved expression
	COND     // ❓ - Conditional block guard
	ARROW    // ▶️ - Parameter/body separator
	EQUALS   // 🟰 - Equality in conditions
	CONCAT   // ➕ - Concatenation
	FN_MARK  // 🔧 - Function literal marker
	STMT_SEP // 🫷 - Statement separator in function bodies
)

// Grapheme clusters for each operator. Several are multi-codepoint
// (🗣️ and ▶️ carry a trailing variation selector), so symbols are
// strings, never runes, and are compared by exact cluster equality.
const (
	TokAssign  = "👉"  // U+1F449
	TokPrint   = "🗣️" // U+1F5E3 U+FE0F
	TokCond    = "❓"  // U+2753
	TokArrow   = "▶️" // U+25B6 U+FE0F
	TokEquals  = "🟰"  // U+1F7F0
	TokConcat  = "➕"  // U+2795
	TokFnMark  = "🔧"  // U+1F527
	TokStmtSep = "🫷"  // U+1FAF7
)

// FromCluster returns the symbol for a grapheme cluster, or NONE.
func FromCluster(c string) Symbol {
	switch c {
	case TokAssign:
		return ASSIGN
	case TokPrint:
		return PRINT
	case TokCond:
		return COND
	case TokArrow:
		return ARROW
	case TokEquals:
		return EQUALS
	case TokConcat:
		return CONCAT
	case TokFnMark:
		return FN_MARK
	case TokStmtSep:
		return STMT_SEP
	}
	return NONE
}

// IsSymbol returns true if the grapheme cluster is a moji operator.
func IsSymbol(c string) bool {
	return FromCluster(c) != NONE
}

// Cluster returns the grapheme cluster for a symbol.
func (s Symbol) Cluster() string {
	switch s {
	case ASSIGN:
		return TokAssign
	case PRINT:
		return TokPrint
	case COND:
		return TokCond
	case ARROW:
		return TokArrow
	case EQUALS:
		return TokEquals
	case CONCAT:
		return TokConcat
	case FN_MARK:
		return TokFnMark
	case STMT_SEP:
		return TokStmtSep
	}
	return ""
}

// String returns the string representation of a symbol.
func (s Symbol) String() string {
	switch s {
	case NONE:
		return "NONE"
	case ASSIGN:
		return "ASSIGN"
	case PRINT:
		return "PRINT"
	case COND:
		return "COND"
	case ARROW:
		return "ARROW"
	case EQUALS:
		return "EQUALS"
	case CONCAT:
		return "CONCAT"
	case FN_MARK:
		return "FN_MARK"
	case STMT_SEP:
		return "STMT_SEP"
	}
	return "UNKNOWN"
}
