// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package value defines moji runtime value types.
package value

import (
	"strings"

	"nickandperla.net/moji/internal/token"
)

// Value is the interface both value variants implement. A binding holds
// exactly one variant at a time; reassignment may change the variant.
type Value interface {
	// String returns the serializable representation of the value.
	String() string
	value()
}

// Text represents literal text content.
type Text struct {
	S string
}

func (t Text) String() string { return t.S }
func (t Text) value()         {}

// Function represents a callable: ordered parameter names and a body of
// statement lines. Immutable once constructed.
type Function struct {
	Params []string
	Body   []string
}

// String reconstructs the function's source form (🔧 params ▶️ body).
func (f Function) String() string {
	var sb strings.Builder
	sb.WriteString(token.TokFnMark)
	for _, p := range f.Params {
		sb.WriteString(p)
	}
	sb.WriteString(token.TokArrow)
	sb.WriteString(strings.Join(f.Body, token.TokStmtSep))
	return sb.String()
}
func (f Function) value() {}
