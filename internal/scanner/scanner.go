// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package scanner provides grapheme-cluster segmentation for moji source.
package scanner

import (
	"github.com/rivo/uniseg"

	"nickandperla.net/moji/internal/token"
)

// Graphemes splits s into user-perceived characters (grapheme clusters).
// Concatenating the result reproduces s exactly; multi-codepoint emoji
// (variation selectors included) are never split across elements.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var clusters []string
	state := -1
	for len(s) > 0 {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, c)
	}
	return clusters
}

// IndexOf returns the index of the first cluster equal to tok, or -1.
func IndexOf(clusters []string, tok string) int {
	for i, c := range clusters {
		if c == tok {
			return i
		}
	}
	return -1
}

// FindSymbol scans clusters left to right for the first cluster that is a
// known operator symbol. Returns its index and symbol, or -1 and NONE.
func FindSymbol(clusters []string) (int, token.Symbol) {
	for i, c := range clusters {
		if sym := token.FromCluster(c); sym != token.NONE {
			return i, sym
		}
	}
	return -1, token.NONE
}

// SplitOn splits clusters on every cluster equal to tok. The separator is
// dropped; empty groups are preserved so parts line up with the source.
func SplitOn(clusters []string, tok string) [][]string {
	parts := [][]string{nil}
	for _, c := range clusters {
		if c == tok {
			parts = append(parts, nil)
			continue
		}
		parts[len(parts)-1] = append(parts[len(parts)-1], c)
	}
	return parts
}

// Join reassembles clusters into a string.
func Join(clusters []string) string {
	var n int
	for _, c := range clusters {
		n += len(c)
	}
	b := make([]byte, 0, n)
	for _, c := range clusters {
		b = append(b, c...)
	}
	return string(b)
}
